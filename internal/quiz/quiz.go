// Package quiz shuffles and grades multiple-choice tests.
package quiz

import (
	"hash/fnv"
	"math/rand"
	"time"

	"mddrc-backend/internal/models"
)

// PublicQuestion is a question as shown to a participant.
type PublicQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Seed mixes the clock with the participant id so two participants opening
// the same test at the same instant still get different orders.
func Seed(participantID string, now time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(participantID))
	return now.UnixNano() ^ int64(h.Sum64())
}

// Shuffle returns the questions in a random order together with the
// canonical index of each returned question.
func Shuffle(questions []models.Question, seed int64) ([]models.Question, []int) {
	indices := rand.New(rand.NewSource(seed)).Perm(len(questions))
	shuffled := make([]models.Question, len(questions))
	for i, idx := range indices {
		shuffled[i] = questions[idx]
	}
	return shuffled, indices
}

// Redact drops the correct answers.
func Redact(questions []models.Question) []PublicQuestion {
	out := make([]PublicQuestion, len(questions))
	for i, q := range questions {
		out[i] = PublicQuestion{Question: q.Question, Options: q.Options}
	}
	return out
}

// Grade counts correct answers. When indices is a permutation of the
// question positions, answers[i] belongs to questions[indices[i]];
// otherwise answers are taken in canonical order.
func Grade(questions []models.Question, answers []int, indices []int) (correct, total int) {
	total = len(questions)
	remap := IsPermutation(indices, total)
	for i, ans := range answers {
		if i >= total {
			break
		}
		q := i
		if remap {
			q = indices[i]
		}
		if ans == questions[q].CorrectAnswer {
			correct++
		}
	}
	return correct, total
}

// Score is the percentage of correct answers.
func Score(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func Passed(score, passPercentage float64) bool {
	return score >= passPercentage
}

func IsPermutation(indices []int, n int) bool {
	if len(indices) != n || n == 0 {
		return false
	}
	seen := make([]bool, n)
	for _, i := range indices {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
