package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is the single live answer-set of a user for a round.
// Submitting again replaces it (unique index on userId+roundId).
type Response struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FormID    primitive.ObjectID     `bson:"formId" json:"formId"`
	UserID    primitive.ObjectID     `bson:"userId" json:"userId"`
	RoundID   primitive.ObjectID     `bson:"roundId" json:"roundId"`
	Answers   map[string]interface{} `bson:"answers" json:"answers"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}

// ArchivedResponse เก็บทุกการ submit แบบ append-only ไม่มีการแก้ไขหรือลบ
// Email is denormalized so the record survives account deletion.
type ArchivedResponse struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FormID    primitive.ObjectID     `bson:"formId" json:"formId"`
	UserID    primitive.ObjectID     `bson:"userId,omitempty" json:"userId"`
	Email     string                 `bson:"email,omitempty" json:"email"`
	Answers   map[string]interface{} `bson:"answers" json:"answers"`
	RoundID   primitive.ObjectID     `bson:"roundId,omitempty" json:"roundId"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}

// ResponseView is a response annotated with the submitter's email,
// as returned to admins.
type ResponseView struct {
	Answers   map[string]interface{} `json:"answers"`
	Email     string                 `json:"email"`
	Timestamp string                 `json:"timestamp"`
	RoundID   primitive.ObjectID     `json:"round_id,omitempty"`
}
