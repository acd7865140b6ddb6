package auth

import (
	"context"
	"errors"
	"log"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/models"
	"Backend-Consensus/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register creates a non-admin account. The unique email index is the
// real duplicate guard; the error is mapped so a race loser still gets
// a clean "already registered".
func Register(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		IsAdmin:  false,
	}

	res, err := database.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// Authenticate verifies email + password and returns the user.
func Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser loads a user by id.
func GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin สร้างหรืออัปเดต admin account จาก ADMIN_EMAIL / ADMIN_PASSWORD
// ตอน start server — ระบบต้องมี admin เสมอ
func EnsureAdmin(ctx context.Context, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	var existing models.User
	err = database.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		_, err = database.UserCollection.InsertOne(ctx, models.User{
			Email:    email,
			Password: hashed,
			IsAdmin:  true,
		})
		if err != nil {
			return err
		}
		log.Println("✅ Admin user created:", email)
		return nil
	}

	_, err = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": existing.ID},
		bson.M{"$set": bson.M{"isAdmin": true, "password": hashed}})
	if err != nil {
		return err
	}
	log.Println("✅ Admin user exists:", email)
	return nil
}
