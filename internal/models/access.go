package models

import "time"

// ParticipantAccess gates what a participant may do inside one session.
// There is at most one record per (participant_id, session_id).
type ParticipantAccess struct {
	ID                  string    `bson:"_id" json:"id"`
	ParticipantID       string    `bson:"participant_id" json:"participant_id"`
	SessionID           string    `bson:"session_id" json:"session_id"`
	CanAccessPreTest    bool      `bson:"can_access_pre_test" json:"can_access_pre_test"`
	CanAccessPostTest   bool      `bson:"can_access_post_test" json:"can_access_post_test"`
	CanAccessFeedback   bool      `bson:"can_access_feedback" json:"can_access_feedback"`
	CanAccessChecklist  bool      `bson:"can_access_checklist" json:"can_access_checklist"`
	PreTestCompleted    bool      `bson:"pre_test_completed" json:"pre_test_completed"`
	PostTestCompleted   bool      `bson:"post_test_completed" json:"post_test_completed"`
	FeedbackCompleted   bool      `bson:"feedback_completed" json:"feedback_completed"`
	CertificateReleased bool      `bson:"certificate_released" json:"certificate_released"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
}

func (a ParticipantAccess) DocID() string { return a.ID }
