package controllers

import (
	"errors"

	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseController handles participant submissions and admin response
// listings, all delegated to the rounds service.
type ResponseController struct {
	svc *rounds.Service
}

func NewResponseController(svc *rounds.Service) *ResponseController {
	return &ResponseController{svc: svc}
}

type submitIn struct {
	FormID  string                 `json:"form_id"`
	Answers map[string]interface{} `json:"answers"`
}

// SubmitResponse บันทึกคำตอบของ user สำหรับ active round
// Resubmitting replaces the previous answers; every attempt is archived.
func (ctrl *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	var req submitIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}
	if req.Answers == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "answers are required"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	err = ctrl.svc.SubmitResponse(c.Context(), formID, userID, currentEmail(c), req.Answers)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active round"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"ok": true})
}

// HasSubmitted เช็คว่า user ส่งคำตอบของ active round แล้วหรือยัง
func (ctrl *ResponseController) HasSubmitted(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Query("form_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form_id"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	submitted, err := ctrl.svc.HasSubmitted(c.Context(), formID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"submitted": submitted})
}

// GetMyResponse คำตอบล่าสุดของ user ใน active round
func (ctrl *ResponseController) GetMyResponse(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	answers, err := ctrl.svc.MyResponse(c.Context(), formID, userID)
	if err != nil {
		if errors.Is(err, rounds.ErrNoActiveRound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active round"})
		}
		if errors.Is(err, rounds.ErrNoResponse) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No response found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"answers": answers})
}

// GetFormResponses คำตอบของฟอร์ม (ทุก round หรือเฉพาะ active round)
func (ctrl *ResponseController) GetFormResponses(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	allRounds := c.QueryBool("all_rounds", false)

	views, err := ctrl.svc.FormResponses(c.Context(), formID, allRounds)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}

// GetArchivedResponses ประวัติการ submit ทั้งหมดของฟอร์ม (append-only)
func (ctrl *ResponseController) GetArchivedResponses(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form ID"})
	}

	views, err := ctrl.svc.ArchivedResponses(c.Context(), formID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}
