package models

import "time"

type Certificate struct {
	ID                string    `bson:"_id" json:"id"`
	CertificateNumber string    `bson:"certificate_number" json:"certificate_number"`
	ParticipantID     string    `bson:"participant_id" json:"participant_id"`
	SessionID         string    `bson:"session_id" json:"session_id"`
	ParticipantName   string    `bson:"participant_name,omitempty" json:"participant_name,omitempty"`
	ProgramName       string    `bson:"program_name,omitempty" json:"program_name,omitempty"`
	CompanyName       string    `bson:"company_name,omitempty" json:"company_name,omitempty"`
	IssueDate         time.Time `bson:"issue_date" json:"issue_date"`
	FilePath          string    `bson:"file_path,omitempty" json:"file_path,omitempty"`
	CertificateURL    string    `bson:"certificate_url,omitempty" json:"certificate_url,omitempty"`
	UploadedBy        string    `bson:"uploaded_by,omitempty" json:"uploaded_by,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

func (c Certificate) DocID() string { return c.ID }
