package controllers

import (
	"Backend-Consensus/src/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RequireWebsocketUpgrade rejects plain HTTP requests on the ws route.
func RequireWebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SummaryFeed คือ live channel: server push อย่างเดียว
// Inbound frames are keepalive only and are drained until the
// connection closes, which unregisters the subscriber.
func SummaryFeed(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
