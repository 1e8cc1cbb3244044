package quiz

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/models"
)

func questions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Question:      fmt.Sprintf("Q%d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
		}
	}
	return qs
}

func TestShuffleTracksIndices(t *testing.T) {
	qs := questions(10)
	shuffled, indices := Shuffle(qs, 42)

	require.Len(t, shuffled, 10)
	require.True(t, IsPermutation(indices, 10))
	for i, idx := range indices {
		assert.Equal(t, qs[idx], shuffled[i])
	}
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	qs := questions(8)
	_, a := Shuffle(qs, 7)
	_, b := Shuffle(qs, 7)
	assert.Equal(t, a, b)
}

func TestSeedDependsOnParticipant(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.NotEqual(t, Seed("alice", now), Seed("bob", now))
	assert.Equal(t, Seed("alice", now), Seed("alice", now))
}

func TestGradeWithShuffledOrder(t *testing.T) {
	qs := questions(6)
	shuffled, indices := Shuffle(qs, 99)

	answers := make([]int, len(shuffled))
	for i, q := range shuffled {
		answers[i] = q.CorrectAnswer
	}
	correct, total := Grade(qs, answers, indices)
	assert.Equal(t, 6, correct)
	assert.Equal(t, 6, total)
}

func TestGradePositional(t *testing.T) {
	qs := questions(4)
	answers := []int{0, 1, 3, 3}

	correct, total := Grade(qs, answers, nil)
	assert.Equal(t, 3, correct)
	assert.Equal(t, 4, total)

	// invalid indices fall back to canonical order
	correct, _ = Grade(qs, answers, []int{0, 0, 1, 2})
	assert.Equal(t, 3, correct)
}

func TestGradeMissingAndExtraAnswers(t *testing.T) {
	qs := questions(4)
	correct, total := Grade(qs, []int{0}, nil)
	assert.Equal(t, 1, correct)
	assert.Equal(t, 4, total)

	correct, _ = Grade(qs, []int{0, 1, 2, 3, 0, 0}, nil)
	assert.Equal(t, 4, correct)
}

func TestScoreAndPass(t *testing.T) {
	assert.Equal(t, 0.0, Score(0, 0))
	assert.Equal(t, 75.0, Score(3, 4))
	assert.True(t, Passed(70, 70))
	assert.False(t, Passed(69.9, 70))
}

func TestRedact(t *testing.T) {
	out := Redact(questions(2))
	require.Len(t, out, 2)
	assert.Equal(t, "Q1", out[1].Question)
	assert.Len(t, out[1].Options, 4)
}
