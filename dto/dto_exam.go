package dto

import (
	"time"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/quiz"
)

type TestCreate struct {
	ProgramID string            `json:"program_id" validate:"required"`
	TestType  string            `json:"test_type" validate:"required,oneof=pre post"`
	Title     string            `json:"title"`
	Questions []models.Question `json:"questions" validate:"required,min=1,dive"`
}

type TestSubmit struct {
	TestID          string `json:"test_id" validate:"required"`
	SessionID       string `json:"session_id" validate:"required"`
	Answers         []int  `json:"answers"`
	QuestionIndices []int  `json:"question_indices"`
}

// AvailableTest is a test as served to a participant: no answers, and for
// post-tests a per-attempt question order.
type AvailableTest struct {
	ID              string                `json:"id"`
	ProgramID       string                `json:"program_id"`
	TestType        string                `json:"test_type"`
	Title           string                `json:"title,omitempty"`
	Questions       []quiz.PublicQuestion `json:"questions"`
	QuestionIndices []int                 `json:"question_indices,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

type TestResultView struct {
	models.TestResult
	TestTitle string            `json:"test_title"`
	Questions []models.Question `json:"questions,omitempty"`
}
