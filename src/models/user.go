package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User ผู้ใช้งานระบบ (participant หรือ admin)
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                string             `bson:"email" json:"email"`
	Password             string             `bson:"password" json:"-"` // ✅ bcrypt hash, never sent back
	IsAdmin              bool               `bson:"isAdmin" json:"is_admin"`
	HasSubmittedFeedback bool               `bson:"hasSubmittedFeedback" json:"has_submitted_feedback"`
}

// FormUnlock records that a user unlocked a join-code-gated form.
// One document per (user, form); re-unlocking is a no-op.
type FormUnlock struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	FormID primitive.ObjectID `bson:"formId" json:"formId"`
}
