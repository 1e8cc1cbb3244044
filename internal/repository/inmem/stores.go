package inmem

import (
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

// NewStores returns empty tables with the same unique constraints the
// MongoDB index bootstrap creates.
func NewStores() *store.Stores {
	return &store.Stores{
		Users:                 NewTable[models.User](store.UsersCollection, []string{"id_number"}),
		Companies:             NewTable[models.Company](store.CompaniesCollection, []string{"name"}),
		Programs:              NewTable[models.Program](store.ProgramsCollection),
		Sessions:              NewTable[models.Session](store.SessionsCollection),
		Access:                NewTable[models.ParticipantAccess](store.ParticipantAccessCollection, []string{"participant_id", "session_id"}),
		Tests:                 NewTable[models.Test](store.TestsCollection),
		TestResults:           NewTable[models.TestResult](store.TestResultsCollection),
		FeedbackTemplates:     NewTable[models.FeedbackTemplate](store.FeedbackTemplatesCollection, []string{"program_id"}),
		Feedback:              NewTable[models.CourseFeedback](store.CourseFeedbackCollection),
		ChecklistTemplates:    NewTable[models.ChecklistTemplate](store.ChecklistTemplatesCollection),
		Checklists:            NewTable[models.VehicleChecklist](store.VehicleChecklistsCollection),
		VehicleDetails:        NewTable[models.VehicleDetails](store.VehicleDetailsCollection, []string{"participant_id", "session_id"}),
		Attendance:            NewTable[models.Attendance](store.AttendanceCollection, []string{"session_id", "participant_id", "date"}),
		ParticipantAttendance: NewTable[models.ParticipantAttendance](store.ParticipantAttendanceCollection, []string{"session_id", "participant_id"}),
		Certificates:          NewTable[models.Certificate](store.CertificatesCollection, []string{"session_id", "participant_id"}),
		Reports:               NewTable[models.TrainingReport](store.TrainingReportsCollection, []string{"session_id", "coordinator_id"}),
		Settings:              NewTable[models.Settings](store.SettingsCollection),
		AuditLogs:             NewTable[models.AuditLog](store.AuditLogsCollection),
	}
}
