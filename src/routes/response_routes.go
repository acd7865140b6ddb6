package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"
	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
)

// responseRoutes กำหนด route สำหรับการ submit และดูคำตอบ
func responseRoutes(app *fiber.App, svc *rounds.Service) {
	ctrl := controllers.NewResponseController(svc)

	app.Post("/submit", middleware.AuthJWT, ctrl.SubmitResponse)
	app.Get("/has_submitted", middleware.AuthJWT, ctrl.HasSubmitted)

	form := app.Group("/form")
	form.Get("/:id/my_response", middleware.AuthJWT, ctrl.GetMyResponse)
	form.Get("/:id/responses", middleware.AuthJWT, middleware.AdminOnly, ctrl.GetFormResponses)
	form.Get("/:id/archived_responses", middleware.AuthJWT, middleware.AdminOnly, ctrl.GetArchivedResponses)
}
