package controllers

import (
	"errors"

	"Backend-Consensus/src/services/forms"
	"Backend-Consensus/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type formCreateIn struct {
	Title     string   `json:"title" validate:"required"`
	Questions []string `json:"questions" validate:"required"`
	AllowJoin bool     `json:"allow_join"`
	JoinCode  string   `json:"join_code"`
}

type formUpdateIn struct {
	Title     string   `json:"title" validate:"required"`
	Questions []string `json:"questions" validate:"required"`
}

// CreateForm สร้างฟอร์มใหม่พร้อม round 1
func CreateForm(c *fiber.Ctx) error {
	var req formCreateIn
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title and questions are required")
	}

	overview, err := forms.CreateForm(c.Context(), req.Title, req.Questions, req.AllowJoin, req.JoinCode)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form")
	}
	return c.JSON(overview)
}

// UpdateForm แก้ไข title และ default questions
func UpdateForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req formUpdateIn
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title and questions are required")
	}

	if err := forms.UpdateForm(c.Context(), formID, req.Title, req.Questions); err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form")
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// DeleteForm ลบฟอร์มและข้อมูลทั้งหมดที่ผูกอยู่ (rounds, responses, archive, unlocks)
func DeleteForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	if err := forms.DeleteForm(c.Context(), formID); err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// GetAllForms รายการฟอร์มทั้งหมดสำหรับ admin dashboard
func GetAllForms(c *fiber.Ctx) error {
	result, err := forms.ListForms(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list forms")
	}
	return c.JSON(result)
}

// GetFormByID ข้อมูลฟอร์มสำหรับ participant
func GetFormByID(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	form, err := forms.GetForm(c.Context(), formID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load form")
	}
	return c.JSON(form)
}

type unlockIn struct {
	JoinCode string `json:"join_code" validate:"required"`
}

// UnlockForm ปลดล็อคฟอร์มด้วย join code (idempotent)
func UnlockForm(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user")
	}

	var req unlockIn
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Join code is required")
	}

	already, err := forms.UnlockForm(c.Context(), userID, req.JoinCode)
	if err != nil {
		if errors.Is(err, forms.ErrFormClosed) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found or closed.")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to unlock form")
	}

	if already {
		return c.JSON(fiber.Map{"message": "Form already unlocked."})
	}
	return c.JSON(fiber.Map{"message": "Form unlocked successfully."})
}

// GetMyForms ฟอร์มที่ user ปลดล็อคแล้ว
func GetMyForms(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user")
	}

	result, err := forms.MyForms(c.Context(), userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to list forms")
	}
	return c.JSON(result)
}
