package routes

import (
	"Backend-Consensus/src/database"
	"Backend-Consensus/src/services/rounds"
	"Backend-Consensus/src/services/summarizer"
	"Backend-Consensus/src/services/summarycache"
	"Backend-Consensus/src/ws"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes ประกอบ service ทั้งหมดและรวม routes จากแต่ละ module
func InitRoutes(app *fiber.App, hub *ws.Hub) {
	cache := summarycache.New(database.RedisClient)
	llm := summarizer.NewClientFromEnv(rounds.SummarizerSystemPrompt)
	roundSvc := rounds.NewService(hub, cache, llm)

	authRoutes(app)
	formRoutes(app)
	roundRoutes(app, roundSvc)
	responseRoutes(app, roundSvc)
	summaryRoutes(app, roundSvc)
	feedbackRoutes(app, cache)
	emailRoutes(app)
	wsRoutes(app, hub)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
