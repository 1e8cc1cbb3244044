package dto

import "mddrc-backend/internal/models"

type ReportGenerate struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ReportView struct {
	models.TrainingReport
	SessionName     string `json:"session_name"`
	CompanyName     string `json:"company_name"`
	ProgramName     string `json:"program_name"`
	CoordinatorName string `json:"coordinator_name"`
}

type SettingsUpdate struct {
	CompanyName  *string `json:"company_name" validate:"omitempty,min=1"`
	PrimaryColor *string `json:"primary_color" validate:"omitempty,hexcolor"`
	LogoURL      *string `json:"logo_url"`
}
