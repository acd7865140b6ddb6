package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ register/login/me
func authRoutes(app *fiber.App) {
	app.Post("/register", controllers.Register)
	app.Post("/login", controllers.Login)
	app.Get("/me", middleware.AuthJWT, controllers.Me)
}
