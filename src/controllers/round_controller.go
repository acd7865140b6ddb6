package controllers

import (
	"errors"

	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoundController exposes the round lifecycle: active round lookup,
// advancement and listings.
type RoundController struct {
	svc *rounds.Service
}

func NewRoundController(svc *rounds.Service) *RoundController {
	return &RoundController{svc: svc}
}

// GetActiveRound คืน active round พร้อม effective questions และ
// synthesis ของ round ก่อนหน้า
func (ctrl *RoundController) GetActiveRound(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	view, err := ctrl.svc.GetActiveRound(c.Context(), formID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active round"})
		}
		if errors.Is(err, rounds.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Form not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

type nextRoundIn struct {
	Questions []string `json:"questions"`
}

// OpenNextRound ปิด round ปัจจุบันและเปิด round ถัดไป
// Body is optional; a non-empty questions list overrides the carry-over.
func (ctrl *RoundController) OpenNextRound(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	var req nextRoundIn
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
		}
	}

	round, err := ctrl.svc.OpenNextRound(c.Context(), formID, req.Questions)
	if err != nil {
		if errors.Is(err, rounds.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Form not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"id":           round.ID,
		"round_number": round.RoundNumber,
		"questions":    round.Questions,
	})
}

// GetRounds ทุก round ของฟอร์มเรียงตาม round number
func (ctrl *RoundController) GetRounds(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	list, err := ctrl.svc.ListRounds(c.Context(), formID)
	if err != nil {
		if errors.Is(err, rounds.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Form not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

// GetRoundsWithResponses ทุก round พร้อมคำตอบ สำหรับหน้า review ของ admin
func (ctrl *RoundController) GetRoundsWithResponses(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	out, err := ctrl.svc.RoundsWithResponses(c.Context(), formID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}
