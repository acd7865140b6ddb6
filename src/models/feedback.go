package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback แบบประเมินการใช้งาน พร้อม snapshot ของ summary ล่าสุด ณ ตอนส่ง
type Feedback struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Accuracy        string             `bson:"accuracy" json:"accuracy"`
	Influence       string             `bson:"influence" json:"influence"`
	FurtherThoughts string             `bson:"furtherThoughts" json:"furtherThoughts"`
	Usability       string             `bson:"usability" json:"usability"`
	Summary         string             `bson:"summary" json:"summary"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// FeedbackView is a feedback entry annotated with the author's email.
type FeedbackView struct {
	Accuracy        string `json:"accuracy"`
	Influence       string `json:"influence"`
	Usability       string `json:"usability"`
	FurtherThoughts string `json:"furtherThoughts"`
	Summary         string `json:"summary"`
	Email           string `json:"email"`
	Timestamp       string `json:"timestamp"`
}
