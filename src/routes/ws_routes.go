package routes

import (
	"Backend-Consensus/src/controllers"
	"Backend-Consensus/src/ws"

	"github.com/gofiber/fiber/v2"
)

// wsRoutes กำหนด route สำหรับ live summary channel
func wsRoutes(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", controllers.RequireWebsocketUpgrade)
	app.Get("/ws", controllers.SummaryFeed(hub))
}
