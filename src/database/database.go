package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const dbName = "ConsensusDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	UserCollection       *mongo.Collection
	FormCollection       *mongo.Collection
	RoundCollection      *mongo.Collection
	ResponseCollection   *mongo.Collection
	ArchiveCollection    *mongo.Collection
	FeedbackCollection   *mongo.Collection
	FormUnlockCollection *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		UserCollection = GetCollection(dbName, "users")
		FormCollection = GetCollection(dbName, "forms")
		RoundCollection = GetCollection(dbName, "rounds")
		ResponseCollection = GetCollection(dbName, "responses")
		ArchiveCollection = GetCollection(dbName, "archived_responses")
		FeedbackCollection = GetCollection(dbName, "feedback")
		FormUnlockCollection = GetCollection(dbName, "form_unlocks")

		connectErr = ensureIndexes()
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
		}
	})

	return connectErr
}

// ensureIndexes สร้าง unique index ที่ระบบต้องพึ่งพา:
// - users.email: no duplicate accounts
// - forms.joinCode: join codes are global
// - responses (userId, roundId): one live response per user per round,
//   serializes concurrent resubmissions at the database
// - rounds (formId, roundNumber): no duplicate round numbers under
//   concurrent advancement
// - form_unlocks (userId, formId): unlock is idempotent
func ensureIndexes() error {
	ctx := context.TODO()
	unique := options.Index().SetUnique(true)

	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = FormCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "joinCode", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = ResponseCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "roundId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = RoundCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "formId", Value: 1}, {Key: "roundNumber", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = FormUnlockCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "formId", Value: 1}},
		Options: unique,
	})
	return err
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
