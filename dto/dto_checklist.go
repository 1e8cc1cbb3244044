package dto

import "mddrc-backend/internal/models"

type ChecklistTemplateRequest struct {
	ProgramID string   `json:"program_id" validate:"required"`
	Title     string   `json:"title"`
	Items     []string `json:"items" validate:"required,min=1,dive,required"`
}

type ChecklistTemplateUpdate struct {
	Title *string   `json:"title"`
	Items *[]string `json:"items" validate:"omitempty,dive,required"`
}

type ChecklistSubmit struct {
	SessionID     string                 `json:"session_id" validate:"required"`
	ParticipantID string                 `json:"participant_id" validate:"required"`
	Items         []models.ChecklistItem `json:"checklist_items" validate:"required,min=1,dive"`
	Photos        []string               `json:"photos"`
}

type VehicleDetailsSubmit struct {
	SessionID          string `json:"session_id" validate:"required"`
	VehicleModel       string `json:"vehicle_model" validate:"required"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	RoadtaxExpiry      string `json:"roadtax_expiry" validate:"required"`
}

type PhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
