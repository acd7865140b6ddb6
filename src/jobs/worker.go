package jobs

import (
	"log"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/services/email"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker in the background. Without Redis or
// SMTP config the worker is skipped and email falls back to inline
// delivery in the controller.
func StartWorker() {
	if database.RedisClient == nil || database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Email worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	if err := email.RegisterHandlers(mux); err != nil {
		log.Println("⚠️ Email handlers not registered:", err)
		return
	}

	go func() {
		log.Println("✅ Email worker started")
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Email worker stopped:", err)
		}
	}()
}
