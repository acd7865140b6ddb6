package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes กำหนด route สำหรับ form management
// Middleware is attached per route: /forms mixes admin and participant
// endpoints, so no group-level guard.
func formRoutes(app *fiber.App) {
	app.Post("/create_form", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateForm)
	app.Get("/my_forms", middleware.AuthJWT, controllers.GetMyForms)

	forms := app.Group("/forms")
	forms.Get("/", middleware.AuthJWT, middleware.AdminOnly, controllers.GetAllForms)
	forms.Post("/unlock", middleware.AuthJWT, controllers.UnlockForm)
	forms.Get("/:id", middleware.AuthJWT, controllers.GetFormByID)
	forms.Put("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.UpdateForm)
	forms.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteForm)
}
