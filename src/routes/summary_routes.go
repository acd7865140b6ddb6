package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"
	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
)

// summaryRoutes กำหนด route สำหรับ synthesis workflow (admin ทั้งหมด)
func summaryRoutes(app *fiber.App, svc *rounds.Service) {
	ctrl := controllers.NewSummaryController(svc)

	forms := app.Group("/forms")
	forms.Post("/:id/push_summary", middleware.AuthJWT, middleware.AdminOnly, ctrl.PushSummary)
	forms.Post("/:id/generate_summary", middleware.AuthJWT, middleware.AdminOnly, ctrl.GenerateSummary)

	app.Post("/form/:id/synthesise", middleware.AuthJWT, middleware.AdminOnly, ctrl.Synthesise)
}
