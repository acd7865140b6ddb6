package controllers

import (
	"errors"

	"Backend-Consensus/src/services/auth"
	"Backend-Consensus/src/utils"

	"github.com/gofiber/fiber/v2"
)

type credentialsIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register สมัครสมาชิกใหม่ (non-admin เสมอ)
func Register(c *fiber.Ctx) error {
	var req credentialsIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	_, err := auth.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed"})
	}

	return c.JSON(fiber.Map{"message": "Registered successfully"})
}

// Login ตรวจสอบ email/password แล้วออก token
func Login(c *fiber.Ctx) error {
	var req credentialsIn
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	user, err := auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.IsAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	return c.JSON(fiber.Map{
		"token":    token,
		"is_admin": user.IsAdmin,
		"email":    user.Email,
	})
}

// Me คืนข้อมูลผู้ใช้ของ token ปัจจุบัน
func Me(c *fiber.Ctx) error {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return c.JSON(fiber.Map{
		"email":    currentEmail(c),
		"is_admin": isAdmin,
	})
}
