package models

import "time"

const (
	ReportDraft     = "draft"
	ReportSubmitted = "submitted"
	ReportArchived  = "archived"
)

type TrainingReport struct {
	ID            string     `bson:"_id" json:"id"`
	SessionID     string     `bson:"session_id" json:"session_id"`
	CoordinatorID string     `bson:"coordinator_id" json:"coordinator_id"`
	Status        string     `bson:"status" json:"status"`
	DocxPath      string     `bson:"docx_path,omitempty" json:"docx_path,omitempty"`
	PDFPath       string     `bson:"pdf_path,omitempty" json:"pdf_path,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	SubmittedAt   *time.Time `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	ArchivedAt    *time.Time `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
}

func (r TrainingReport) DocID() string { return r.ID }
