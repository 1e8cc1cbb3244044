package dto

import (
	"time"

	"mddrc-backend/internal/models"
)

type DataFilter struct {
	SessionID string `query:"session_id"`
	CompanyID string `query:"company_id"`
	ProgramID string `query:"program_id"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type AuditLogView struct {
	ID             string    `json:"id"`
	UserEmail      string    `json:"user_email"`
	Action         string    `json:"action"`
	ResourceType   string    `json:"resource_type"`
	ResourceID     string    `json:"resource_id"`
	Timestamp      time.Time `json:"timestamp"`
	ChangesSummary string    `json:"changes_summary,omitempty"`
	OldData        any       `json:"old_data,omitempty"`
	NewData        any       `json:"new_data,omitempty"`
}

// EligibilityResponse reports whether a certificate may be issued.
type EligibilityResponse struct {
	Eligible            bool   `json:"eligible"`
	PreTestCompleted    bool   `json:"pre_test_completed"`
	PostTestCompleted   bool   `json:"post_test_completed"`
	FeedbackCompleted   bool   `json:"feedback_completed"`
	Passed              bool   `json:"passed"`
	CertificateReleased bool   `json:"certificate_released"`
	Reason              string `json:"reason,omitempty"`
}

type TestResultPatch struct {
	Score   *float64 `json:"score" validate:"omitempty,gte=0,lte=100"`
	Passed  *bool    `json:"passed"`
	Answers *[]int   `json:"answers"`
}

type FeedbackPatch struct {
	Responses []models.FeedbackResponse `json:"responses" validate:"required"`
}

// AttendancePatch carries RFC 3339 timestamps.
type AttendancePatch struct {
	ClockIn  string `json:"clock_in"`
	ClockOut string `json:"clock_out"`
}

type ChecklistPatch struct {
	Items []models.ChecklistItem `json:"items" validate:"required,dive"`
}

// DataRow is a stored record flattened to JSON keys plus display names.
type DataRow map[string]any

type UpdatedResponse struct {
	Message string `json:"message"`
	Record  any    `json:"record"`
}
