package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis connects to Redis. Redis backs the summary side-cache and
// the email queue; when it is unavailable the server still runs, the
// cache reads back empty and email falls back to inline delivery.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		RedisURI = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "", // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
