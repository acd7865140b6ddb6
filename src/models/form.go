package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// --- Form ---
type Form struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Questions []string           `bson:"questions" json:"questions"`
	AllowJoin bool               `bson:"allowJoin" json:"allow_join"`
	JoinCode  string             `bson:"joinCode" json:"join_code"`
}

// FormOverview ฟอร์มพร้อมข้อมูลสรุปสำหรับหน้า admin dashboard
type FormOverview struct {
	ID               primitive.ObjectID `json:"id"`
	Title            string             `json:"title"`
	Questions        []string           `json:"questions"`
	AllowJoin        bool               `json:"allow_join"`
	JoinCode         string             `json:"join_code"`
	ParticipantCount int                `json:"participant_count"`
	CurrentRound     int                `json:"current_round"`
}
