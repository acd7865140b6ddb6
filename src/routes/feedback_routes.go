package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"
	"Backend-Consensus/src/services/summarycache"

	"github.com/gofiber/fiber/v2"
)

// feedbackRoutes กำหนด route สำหรับ feedback
func feedbackRoutes(app *fiber.App, cache *summarycache.Cache) {
	ctrl := controllers.NewFeedbackController(cache)

	app.Post("/submit_feedback", middleware.AuthJWT, ctrl.SubmitFeedback)
	app.Get("/all_feedback", middleware.AuthJWT, middleware.AdminOnly, ctrl.GetAllFeedback)
}
