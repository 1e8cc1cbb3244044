package models

import "time"

const (
	SessionActive   = "active"
	SessionInactive = "inactive"

	CompletionOngoing   = "ongoing"
	CompletionCompleted = "completed"
	CompletionArchived  = "archived"

	TrainerChief   = "chief"
	TrainerRegular = "regular"
)

type TrainerAssignment struct {
	TrainerID string `bson:"trainer_id" json:"trainer_id" validate:"required"`
	Role      string `bson:"role" json:"role" validate:"omitempty,oneof=chief regular"`
}

func (t TrainerAssignment) IsChief() bool { return t.Role == TrainerChief }

// Session dates are "YYYY-MM-DD" strings so range filters compare lexically.
type Session struct {
	ID                     string              `bson:"_id" json:"id"`
	Name                   string              `bson:"name" json:"name"`
	ProgramID              string              `bson:"program_id" json:"program_id"`
	CompanyID              string              `bson:"company_id" json:"company_id"`
	Location               string              `bson:"location" json:"location"`
	StartDate              string              `bson:"start_date" json:"start_date"`
	EndDate                string              `bson:"end_date" json:"end_date"`
	SupervisorIDs          []string            `bson:"supervisor_ids" json:"supervisor_ids"`
	ParticipantIDs         []string            `bson:"participant_ids" json:"participant_ids"`
	TrainerAssignments     []TrainerAssignment `bson:"trainer_assignments" json:"trainer_assignments"`
	CoordinatorID          string              `bson:"coordinator_id,omitempty" json:"coordinator_id,omitempty"`
	Status                 string              `bson:"status" json:"status"`
	CompletionStatus       string              `bson:"completion_status" json:"completion_status"`
	CompletedByCoordinator bool                `bson:"completed_by_coordinator" json:"completed_by_coordinator"`
	CompletedDate          *time.Time          `bson:"completed_date,omitempty" json:"completed_date,omitempty"`
	IsArchived             bool                `bson:"is_archived" json:"is_archived"`
	ArchivedDate           *time.Time          `bson:"archived_date,omitempty" json:"archived_date,omitempty"`
	CreatedAt              time.Time           `bson:"created_at" json:"created_at"`
}

func (s Session) DocID() string { return s.ID }

func (s Session) HasParticipant(id string) bool {
	return contains(s.ParticipantIDs, id)
}

func (s Session) HasSupervisor(id string) bool {
	return contains(s.SupervisorIDs, id)
}

func (s Session) HasTrainer(id string) bool {
	for _, t := range s.TrainerAssignments {
		if t.TrainerID == id {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
