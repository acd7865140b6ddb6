package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"
	"Backend-Consensus/src/services/rounds"

	"github.com/gofiber/fiber/v2"
)

// roundRoutes กำหนด route สำหรับ round lifecycle
func roundRoutes(app *fiber.App, svc *rounds.Service) {
	ctrl := controllers.NewRoundController(svc)

	forms := app.Group("/forms")
	forms.Get("/:id/active_round", middleware.AuthJWT, ctrl.GetActiveRound)
	forms.Get("/:id/rounds", middleware.AuthJWT, ctrl.GetRounds)
	forms.Post("/:id/next_round", middleware.AuthJWT, middleware.AdminOnly, ctrl.OpenNextRound)
	forms.Get("/:id/rounds_with_responses", middleware.AuthJWT, middleware.AdminOnly, ctrl.GetRoundsWithResponses)
}
