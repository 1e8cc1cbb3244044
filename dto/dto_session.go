package dto

import (
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/roster"
)

type SessionFilter struct {
	Search    string `query:"search"`
	CompanyID string `query:"company_id"`
	ProgramID string `query:"program_id"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type SessionCreate struct {
	Name               string                     `json:"name" validate:"required"`
	ProgramID          string                     `json:"program_id" validate:"required"`
	CompanyID          string                     `json:"company_id" validate:"required"`
	Location           string                     `json:"location"`
	StartDate          string                     `json:"start_date" validate:"required,date"`
	EndDate            string                     `json:"end_date" validate:"required,date"`
	SupervisorIDs      []string                   `json:"supervisor_ids"`
	ParticipantIDs     []string                   `json:"participant_ids"`
	Participants       []PersonData               `json:"participants" validate:"dive"`
	Supervisors        []PersonData               `json:"supervisors" validate:"dive"`
	TrainerAssignments []models.TrainerAssignment `json:"trainer_assignments" validate:"dive"`
	CoordinatorID      string                     `json:"coordinator_id"`
}

type SessionUpdate struct {
	Name               *string                     `json:"name" validate:"omitempty,min=1"`
	ProgramID          *string                     `json:"program_id"`
	CompanyID          *string                     `json:"company_id"`
	Location           *string                     `json:"location"`
	StartDate          *string                     `json:"start_date" validate:"omitempty,date"`
	EndDate            *string                     `json:"end_date" validate:"omitempty,date"`
	SupervisorIDs      *[]string                   `json:"supervisor_ids"`
	ParticipantIDs     *[]string                   `json:"participant_ids"`
	TrainerAssignments *[]models.TrainerAssignment `json:"trainer_assignments"`
	CoordinatorID      *string                     `json:"coordinator_id"`
	Status             *string                     `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreatedResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type AddParticipantsRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
}

type AddParticipantsResponse struct {
	Message    string `json:"message"`
	AddedCount int    `json:"added_count"`
}

type SessionView struct {
	models.Session
	CompanyName      string `json:"company_name"`
	ProgramName      string `json:"program_name"`
	ParticipantCount *int   `json:"participant_count,omitempty"`
}

type ParticipantView struct {
	models.User
	AccessInfo   *models.ParticipantAccess `json:"access_info"`
	PreTestScore *float64                  `json:"pre_test_score"`
}

type ParticipantSummary struct {
	models.User
	Access             *models.ParticipantAccess `json:"access"`
	TestResults        []models.TestResult       `json:"test_results"`
	AttendanceCount    int                       `json:"attendance_count"`
	ChecklistCompleted bool                      `json:"checklist_completed"`
	FeedbackSubmitted  bool                      `json:"feedback_submitted"`
}

type ResultsSummary struct {
	models.Session
	Participants []ParticipantSummary      `json:"participants"`
	TestResults  []models.TestResult       `json:"test_results"`
	Feedback     []models.CourseFeedback   `json:"feedback"`
	Checklists   []models.VehicleChecklist `json:"checklists"`
	Attendance   []models.Attendance       `json:"attendance"`
}

type SessionStatus struct {
	SessionID        string `json:"session_id"`
	ParticipantCount int    `json:"participant_count"`
	PreTestCount     int64  `json:"pre_test_count"`
	FeedbackCount    int64  `json:"feedback_count"`
	ChecklistCount   int64  `json:"checklist_count"`
	CompletionStatus string `json:"completion_status"`
}

type CompletionChecklist struct {
	ParticipantCount        int     `json:"participant_count"`
	PreTestSubmissions      int64   `json:"pre_test_submissions"`
	FeedbackSubmissions     int64   `json:"feedback_submissions"`
	ChecklistSubmissions    int64   `json:"checklist_submissions"`
	TrainingReportGenerated bool    `json:"training_report_generated"`
	TrainingReportStatus    *string `json:"training_report_status"`
	AllRequirementsMet      bool    `json:"all_requirements_met"`
}

type Distribution struct {
	SessionID string         `json:"session_id"`
	Shares    []roster.Share `json:"shares"`
}

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type CountResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
