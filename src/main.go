package main

import (
	"context"
	"log"
	"os"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/jobs"
	"Backend-Consensus/src/routes"
	"Backend-Consensus/src/services/auth"
	"Backend-Consensus/src/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// เชื่อมต่อกับ MongoDB (โหลด .env ในนั้นด้วย)
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq เป็น optional: ไม่มีก็รันได้ (cache/queue ถูกข้าม)
	database.InitRedis()
	database.InitAsynq()

	// ensure the admin account exists before serving requests
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "change-me-now"
	}
	if err := auth.EnsureAdmin(context.Background(), adminEmail, adminPassword); err != nil {
		log.Fatalf("❌ Admin user not created: %v", err)
	}

	// email worker (background, optional)
	jobs.StartWorker()

	// broadcast hub: one per process, torn down with it
	hub := ws.NewHub()

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, hub)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(":" + appURI)
	if err != nil {
		log.Fatal(err)
	}

}
