package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// currentUserID reads the authenticated user id set by middleware.AuthJWT.
func currentUserID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(raw)
}

func currentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
