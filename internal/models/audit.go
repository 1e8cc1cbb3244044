package models

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type AuditLog struct {
	ID           string         `bson:"_id" json:"id"`
	UserID       string         `bson:"user_id" json:"user_id"`
	UserEmail    string         `bson:"user_email" json:"user_email"`
	Action       string         `bson:"action" json:"action"`
	ResourceType string         `bson:"resource_type" json:"resource_type"`
	ResourceID   string         `bson:"resource_id" json:"resource_id"`
	OldData      map[string]any `bson:"old_data,omitempty" json:"old_data,omitempty"`
	NewData      map[string]any `bson:"new_data,omitempty" json:"new_data,omitempty"`
	IPAddress    string         `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	Timestamp    time.Time      `bson:"timestamp" json:"timestamp"`
}

func (a AuditLog) DocID() string { return a.ID }
