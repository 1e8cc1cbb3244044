package repository

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

// NewStores wires every collection of the database.
func NewStores(db *mongo.Database) *store.Stores {
	return &store.Stores{
		Users:                 NewCollection[models.User](db, store.UsersCollection),
		Companies:             NewCollection[models.Company](db, store.CompaniesCollection),
		Programs:              NewCollection[models.Program](db, store.ProgramsCollection),
		Sessions:              NewCollection[models.Session](db, store.SessionsCollection),
		Access:                NewCollection[models.ParticipantAccess](db, store.ParticipantAccessCollection),
		Tests:                 NewCollection[models.Test](db, store.TestsCollection),
		TestResults:           NewCollection[models.TestResult](db, store.TestResultsCollection),
		FeedbackTemplates:     NewCollection[models.FeedbackTemplate](db, store.FeedbackTemplatesCollection),
		Feedback:              NewCollection[models.CourseFeedback](db, store.CourseFeedbackCollection),
		ChecklistTemplates:    NewCollection[models.ChecklistTemplate](db, store.ChecklistTemplatesCollection),
		Checklists:            NewCollection[models.VehicleChecklist](db, store.VehicleChecklistsCollection),
		VehicleDetails:        NewCollection[models.VehicleDetails](db, store.VehicleDetailsCollection),
		Attendance:            NewCollection[models.Attendance](db, store.AttendanceCollection),
		ParticipantAttendance: NewCollection[models.ParticipantAttendance](db, store.ParticipantAttendanceCollection),
		Certificates:          NewCollection[models.Certificate](db, store.CertificatesCollection),
		Reports:               NewCollection[models.TrainingReport](db, store.TrainingReportsCollection),
		Settings:              NewCollection[models.Settings](db, store.SettingsCollection),
		AuditLogs:             NewCollection[models.AuditLog](db, store.AuditLogsCollection),
	}
}
