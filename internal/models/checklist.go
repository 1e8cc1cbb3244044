package models

import "time"

const DefaultChecklistTitle = "Vehicle Inspection Checklist"

type ChecklistTemplate struct {
	ID        string    `bson:"_id" json:"id"`
	ProgramID string    `bson:"program_id" json:"program_id"`
	Title     string    `bson:"title" json:"title"`
	Items     []string  `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (t ChecklistTemplate) DocID() string { return t.ID }

type ChecklistItem struct {
	Item      string `bson:"item" json:"item" validate:"required"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	Comments  string `bson:"comments,omitempty" json:"comments,omitempty"`
	PhotoURL  string `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Completed bool   `bson:"completed" json:"completed"`
}

type VehicleChecklist struct {
	ID                 string          `bson:"_id" json:"id"`
	SessionID          string          `bson:"session_id" json:"session_id"`
	ParticipantID      string          `bson:"participant_id" json:"participant_id"`
	TrainerID          string          `bson:"trainer_id,omitempty" json:"trainer_id,omitempty"`
	Items              []ChecklistItem `bson:"items" json:"items"`
	Photos             []string        `bson:"photos" json:"photos"`
	VerificationStatus string          `bson:"verification_status" json:"verification_status"`
	VerifiedBy         string          `bson:"verified_by,omitempty" json:"verified_by,omitempty"`
	VerifiedAt         *time.Time      `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	CreatedAt          time.Time       `bson:"created_at" json:"created_at"`
}

func (c VehicleChecklist) DocID() string { return c.ID }

type VehicleDetails struct {
	ID                 string    `bson:"_id" json:"id"`
	ParticipantID      string    `bson:"participant_id" json:"participant_id"`
	SessionID          string    `bson:"session_id" json:"session_id"`
	VehicleModel       string    `bson:"vehicle_model" json:"vehicle_model"`
	RegistrationNumber string    `bson:"registration_number" json:"registration_number"`
	RoadtaxExpiry      string    `bson:"roadtax_expiry" json:"roadtax_expiry"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

func (v VehicleDetails) DocID() string { return v.ID }
