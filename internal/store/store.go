// Package store declares the persistence contract shared by the MongoDB
// repositories and the in-memory implementation used by tests.
package store

import (
	"context"

	"github.com/pkg/errors"

	"mddrc-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Document is anything stored under a string primary key.
type Document interface {
	DocID() string
}

// Collection is the CRUD surface every service works against.
// Save replaces the whole document, inserting it if missing (last write wins).
type Collection[T Document] interface {
	Get(ctx context.Context, id string) (T, error)
	FindOne(ctx context.Context, q Query) (T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
	Insert(ctx context.Context, doc T) error
	Save(ctx context.Context, doc T) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, q Query) (int64, error)
}

// Collection names, shared by both implementations and the index bootstrap.
const (
	UsersCollection                 = "users"
	CompaniesCollection             = "companies"
	ProgramsCollection              = "programs"
	SessionsCollection              = "sessions"
	ParticipantAccessCollection     = "participant_access"
	TestsCollection                 = "tests"
	TestResultsCollection           = "test_results"
	FeedbackTemplatesCollection     = "feedback_templates"
	CourseFeedbackCollection        = "course_feedback"
	ChecklistTemplatesCollection    = "checklist_templates"
	VehicleChecklistsCollection     = "vehicle_checklists"
	VehicleDetailsCollection        = "vehicle_details"
	AttendanceCollection            = "attendance"
	ParticipantAttendanceCollection = "participant_attendance"
	CertificatesCollection          = "certificates"
	TrainingReportsCollection       = "training_reports"
	SettingsCollection              = "settings"
	AuditLogsCollection             = "audit_logs"
)

type Stores struct {
	Users                 Collection[models.User]
	Companies             Collection[models.Company]
	Programs              Collection[models.Program]
	Sessions              Collection[models.Session]
	Access                Collection[models.ParticipantAccess]
	Tests                 Collection[models.Test]
	TestResults           Collection[models.TestResult]
	FeedbackTemplates     Collection[models.FeedbackTemplate]
	Feedback              Collection[models.CourseFeedback]
	ChecklistTemplates    Collection[models.ChecklistTemplate]
	Checklists            Collection[models.VehicleChecklist]
	VehicleDetails        Collection[models.VehicleDetails]
	Attendance            Collection[models.Attendance]
	ParticipantAttendance Collection[models.ParticipantAttendance]
	Certificates          Collection[models.Certificate]
	Reports               Collection[models.TrainingReport]
	Settings              Collection[models.Settings]
	AuditLogs             Collection[models.AuditLog]
}
