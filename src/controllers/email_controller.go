package controllers

import (
	"fmt"
	"log"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/services/email"

	"github.com/gofiber/fiber/v2"
)

type sendEmailIn struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}

// SendEmail ส่งอีเมลผ่าน queue ถ้ามี Redis ไม่งั้นส่งตรงผ่าน SMTP
func SendEmail(c *fiber.Ctx) error {
	var req sendEmailIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to, subject and html are required"})
	}

	if database.AsynqClient != nil {
		task, err := email.NewSendEmailTask(req.To, req.Subject, req.HTML)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if _, err := database.AsynqClient.EnqueueContext(c.Context(), task); err != nil {
			log.Println("⚠️ enqueue failed, sending inline:", err)
		} else {
			return c.JSON(fiber.Map{"status": "queued"})
		}
	}

	// inline fallback when the queue is unavailable
	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Failed: %v", err)})
	}
	if err := sender.Send(req.To, req.Subject, req.HTML); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Failed: %v", err)})
	}
	return c.JSON(fiber.Map{"status": "sent"})
}
