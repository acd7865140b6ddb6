package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// emailRoutes กำหนด route สำหรับส่งอีเมล (admin เท่านั้น)
func emailRoutes(app *fiber.App) {
	app.Post("/send_email", middleware.AuthJWT, middleware.AdminOnly, controllers.SendEmail)
}
