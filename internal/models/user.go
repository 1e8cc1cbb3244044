package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin          = "admin"
	RoleAssistantAdmin = "assistant_admin"
	RoleCoordinator    = "coordinator"
	RoleTrainer        = "trainer"
	RoleParticipant    = "participant"
	RoleSupervisor     = "supervisor"
)

var AllRoles = []string{
	RoleAdmin, RoleAssistantAdmin, RoleCoordinator,
	RoleTrainer, RoleParticipant, RoleSupervisor,
}

// NewID returns a random identifier used as the primary key of every document.
func NewID() string {
	return uuid.NewString()
}

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	IDNumber     string    `bson:"id_number" json:"id_number"`
	Role         string    `bson:"role" json:"role"`
	CompanyID    string    `bson:"company_id,omitempty" json:"company_id,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	PasswordHash string    `bson:"password" json:"-"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func (u User) DocID() string { return u.ID }

func (u User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
