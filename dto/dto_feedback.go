package dto

import "mddrc-backend/internal/models"

type FeedbackTemplateRequest struct {
	ProgramID string                    `json:"program_id" validate:"required"`
	Title     string                    `json:"title"`
	Questions []models.FeedbackQuestion `json:"questions" validate:"required,min=1,dive"`
}

type FeedbackSubmit struct {
	SessionID          string                    `json:"session_id" validate:"required"`
	FeedbackTemplateID string                    `json:"feedback_template_id"`
	Responses          []models.FeedbackResponse `json:"responses" validate:"required,min=1"`
}

type FeedbackView struct {
	models.CourseFeedback
	ParticipantName string `json:"participant_name"`
	SessionName     string `json:"session_name"`
}
