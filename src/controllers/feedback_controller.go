package controllers

import (
	"Backend-Consensus/src/services/feedback"
	"Backend-Consensus/src/services/summarycache"

	"github.com/gofiber/fiber/v2"
)

// FeedbackController stores usability feedback with a snapshot of the
// most recently cached summary.
type FeedbackController struct {
	cache *summarycache.Cache
}

func NewFeedbackController(cache *summarycache.Cache) *FeedbackController {
	return &FeedbackController{cache: cache}
}

type feedbackIn struct {
	Accuracy        string `json:"accuracy"`
	Influence       string `json:"influence"`
	FurtherThoughts string `json:"furtherThoughts"`
	Usability       string `json:"usability"`
}

// SubmitFeedback บันทึก feedback พร้อม snapshot ของ summary ล่าสุด
func (ctrl *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	var req feedbackIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	// whatever summary is cached right now becomes the snapshot;
	// an empty cache snapshots as ""
	snapshot := ctrl.cache.Latest(c.Context())

	err = feedback.Submit(c.Context(), userID,
		req.Accuracy, req.Influence, req.FurtherThoughts, req.Usability, snapshot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Feedback saved"})
}

// GetAllFeedback ทุก feedback เรียงใหม่สุดก่อน (admin เท่านั้น)
func (ctrl *FeedbackController) GetAllFeedback(c *fiber.Ctx) error {
	views, err := feedback.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}
