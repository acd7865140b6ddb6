package controllers

import (
	"errors"
	"fmt"

	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryController covers the admin synthesis workflow: pushing a
// summary to the active round (with live broadcast), generating one via
// the language model, and the naive HTML fallback.
type SummaryController struct {
	svc *rounds.Service
}

func NewSummaryController(svc *rounds.Service) *SummaryController {
	return &SummaryController{svc: svc}
}

type pushSummaryIn struct {
	Summary string `json:"summary"`
}

// PushSummary เก็บ summary ลง active round แล้ว broadcast ให้ client ที่ต่ออยู่
func (ctrl *SummaryController) PushSummary(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var req pushSummaryIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := ctrl.svc.PushSummary(c.Context(), formID, req.Summary); err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active round"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"detail": "Summary pushed"})
}

type generateSummaryIn struct {
	Model string `json:"model" validate:"required"`
}

// GenerateSummary ให้ language model สังเคราะห์คำตอบของ active round
// ผลลัพธ์ไม่ถูกบันทึก — admin ต้อง push เอง
func (ctrl *SummaryController) GenerateSummary(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var req generateSummaryIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Model is required"})
	}

	summary, err := ctrl.svc.GenerateSummary(c.Context(), formID, req.Model)
	if err != nil {
		switch {
		case errors.Is(err, rounds.ErrNoActiveRound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active round"})
		case errors.Is(err, rounds.ErrNoQuestions):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No questions found for this round"})
		case errors.Is(err, rounds.ErrNoResponses):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No responses to summarize"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Failed to generate summary: %v", err),
			})
		}
	}

	return c.JSON(fiber.Map{"summary": summary})
}

// Synthesise รวมคำตอบของ active round เป็น HTML ตรง ๆ ไม่เรียก model
func (ctrl *SummaryController) Synthesise(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	html, err := ctrl.svc.Synthesise(c.Context(), formID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active round"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"summary": html})
}
