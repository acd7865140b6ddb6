package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// --- Round ---
// One collection iteration of a form. At most one round per form has
// IsActive=true; the (formId, roundNumber) pair is unique.
type Round struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	RoundNumber int                `bson:"roundNumber" json:"round_number"`
	Questions   []string           `bson:"questions,omitempty" json:"questions"`
	Synthesis   string             `bson:"synthesis,omitempty" json:"synthesis"`
	IsActive    bool               `bson:"isActive" json:"is_active"`
}

// ActiveRoundView คือข้อมูล active round ที่ส่งให้ participant
type ActiveRoundView struct {
	ID                     primitive.ObjectID `json:"id"`
	RoundNumber            int                `json:"round_number"`
	Questions              []string           `json:"questions"`
	PreviousRoundSynthesis string             `json:"previous_round_synthesis"`
}

// RoundWithResponses is a round plus every response collected in it,
// used by the admin review page.
type RoundWithResponses struct {
	ID          primitive.ObjectID `json:"id"`
	RoundNumber int                `json:"round_number"`
	Synthesis   string             `json:"synthesis"`
	IsActive    bool               `json:"is_active"`
	Responses   []ResponseView     `json:"responses"`
}
