package models

import "time"

type FeedbackQuestion struct {
	Question string   `bson:"question" json:"question" validate:"required"`
	Type     string   `bson:"type" json:"type" validate:"required,oneof=rating text"`
	Required bool     `bson:"required" json:"required"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
}

type FeedbackTemplate struct {
	ID        string             `bson:"_id" json:"id"`
	ProgramID string             `bson:"program_id" json:"program_id"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Questions []FeedbackQuestion `bson:"questions" json:"questions"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (t FeedbackTemplate) DocID() string { return t.ID }

// FeedbackResponse holds one answer; ratings arrive as numbers and free text as strings.
type FeedbackResponse struct {
	Question string `bson:"question" json:"question"`
	Answer   any    `bson:"answer" json:"answer"`
}

type CourseFeedback struct {
	ID                 string             `bson:"_id" json:"id"`
	SessionID          string             `bson:"session_id" json:"session_id"`
	ParticipantID      string             `bson:"participant_id" json:"participant_id"`
	FeedbackTemplateID string             `bson:"feedback_template_id,omitempty" json:"feedback_template_id,omitempty"`
	Responses          []FeedbackResponse `bson:"responses" json:"responses"`
	SubmittedAt        time.Time          `bson:"submitted_at" json:"submitted_at"`
}

func (f CourseFeedback) DocID() string { return f.ID }
