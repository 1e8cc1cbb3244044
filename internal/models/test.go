package models

import "time"

const (
	TestPre  = "pre"
	TestPost = "post"
)

type Question struct {
	Question      string   `bson:"question" json:"question" validate:"required"`
	Options       []string `bson:"options" json:"options" validate:"min=2"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer" validate:"gte=0"`
}

type Test struct {
	ID        string     `bson:"_id" json:"id"`
	ProgramID string     `bson:"program_id" json:"program_id"`
	TestType  string     `bson:"test_type" json:"test_type"`
	Title     string     `bson:"title,omitempty" json:"title,omitempty"`
	Questions []Question `bson:"questions" json:"questions"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

func (t Test) DocID() string { return t.ID }

type TestResult struct {
	ID              string    `bson:"_id" json:"id"`
	TestID          string    `bson:"test_id" json:"test_id"`
	ParticipantID   string    `bson:"participant_id" json:"participant_id"`
	ParticipantName string    `bson:"participant_name" json:"participant_name"`
	ParticipantIC   string    `bson:"participant_ic" json:"participant_ic"`
	SessionID       string    `bson:"session_id" json:"session_id"`
	TestType        string    `bson:"test_type" json:"test_type"`
	Answers         []int     `bson:"answers" json:"answers"`
	QuestionIndices []int     `bson:"question_indices,omitempty" json:"question_indices,omitempty"`
	Score           float64   `bson:"score" json:"score"`
	CorrectAnswers  int       `bson:"correct_answers" json:"correct_answers"`
	TotalQuestions  int       `bson:"total_questions" json:"total_questions"`
	Passed          bool      `bson:"passed" json:"passed"`
	SubmittedAt     time.Time `bson:"submitted_at" json:"submitted_at"`
}

func (r TestResult) DocID() string { return r.ID }
