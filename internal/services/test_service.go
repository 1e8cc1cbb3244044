package services

import (
	"context"
	"fmt"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/quiz"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type TestService struct {
	st     *store.Stores
	access *AccessService
	clock  utils.Clock
}

func NewTestService(st *store.Stores, access *AccessService, clock utils.Clock) *TestService {
	return &TestService{st: st, access: access, clock: clock}
}

func (s *TestService) ByProgram(ctx context.Context, programID string) ([]models.Test, error) {
	return s.st.Tests.Find(ctx, store.Q().Eq("program_id", programID).SortBy("created_at", false))
}

func (s *TestService) Get(ctx context.Context, id string) (models.Test, error) {
	t, err := s.st.Tests.Get(ctx, id)
	return t, lookup(err, "Test")
}

func (s *TestService) Create(ctx context.Context, actor models.User, req dto.TestCreate) (models.Test, error) {
	if err := requireRole(actor, "Only admins can create tests", models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return models.Test{}, err
	}
	for i, q := range req.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return models.Test{}, badRequest(fmt.Sprintf("Question %d has no valid correct answer", i+1))
		}
	}
	t := models.Test{
		ID:        models.NewID(),
		ProgramID: req.ProgramID,
		TestType:  req.TestType,
		Title:     req.Title,
		Questions: req.Questions,
		CreatedAt: s.clock.Now(),
	}
	return t, s.st.Tests.Insert(ctx, t)
}

func (s *TestService) Delete(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins and assistant admins can delete tests",
		models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return err
	}
	return lookup(s.st.Tests.Delete(ctx, id), "Test")
}

// Submit grades a participant's answers and closes the matching test gate.
// Answers to a shuffled post-test are mapped back through question_indices.
func (s *TestService) Submit(ctx context.Context, actor models.User, req dto.TestSubmit) (models.TestResult, error) {
	if err := requireRole(actor, "Only participants can submit tests", models.RoleParticipant); err != nil {
		return models.TestResult{}, err
	}
	test, err := s.Get(ctx, req.TestID)
	if err != nil {
		return models.TestResult{}, err
	}
	sess, err := s.st.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		return models.TestResult{}, lookup(err, "Session")
	}
	if !sess.HasParticipant(actor.ID) {
		return models.TestResult{}, forbidden("You are not enrolled in this session")
	}

	pass := models.DefaultPassPercentage
	if p, err := s.st.Programs.Get(ctx, sess.ProgramID); err == nil {
		pass = p.PassPercentage
	}

	answers := req.Answers
	if answers == nil {
		answers = []int{}
	}
	correct, total := quiz.Grade(test.Questions, answers, req.QuestionIndices)
	score := quiz.Score(correct, total)
	r := models.TestResult{
		ID:              models.NewID(),
		TestID:          test.ID,
		ParticipantID:   actor.ID,
		ParticipantName: actor.FullName,
		ParticipantIC:   actor.IDNumber,
		SessionID:       sess.ID,
		TestType:        test.TestType,
		Answers:         answers,
		QuestionIndices: req.QuestionIndices,
		Score:           score,
		CorrectAnswers:  correct,
		TotalQuestions:  total,
		Passed:          quiz.Passed(score, pass),
		SubmittedAt:     s.clock.Now(),
	}
	if err := s.st.TestResults.Insert(ctx, r); err != nil {
		return models.TestResult{}, err
	}

	_, err = s.access.Mutate(ctx, actor.ID, sess.ID, func(a *models.ParticipantAccess) {
		switch test.TestType {
		case models.TestPre:
			a.PreTestCompleted = true
		case models.TestPost:
			a.PostTestCompleted = true
		}
	})
	return r, err
}

func (s *TestService) views(ctx context.Context, results []models.TestResult, withQuestions bool) []dto.TestResultView {
	tests := map[string]models.Test{}
	out := make([]dto.TestResultView, 0, len(results))
	for _, r := range results {
		t, ok := tests[r.TestID]
		if !ok {
			t, _ = s.st.Tests.Get(ctx, r.TestID)
			tests[r.TestID] = t
		}
		v := dto.TestResultView{TestResult: r, TestTitle: t.Title}
		if v.TestTitle == "" {
			v.TestTitle = "Test"
		}
		if v.TestType == "" {
			v.TestType = t.TestType
		}
		if withQuestions {
			v.Questions = t.Questions
		}
		out = append(out, v)
	}
	return out
}

func (s *TestService) SessionResults(ctx context.Context, sessionID string) ([]dto.TestResultView, error) {
	results, err := s.st.TestResults.Find(ctx, store.Q().Eq("session_id", sessionID).SortBy("submitted_at", false))
	if err != nil {
		return nil, err
	}
	return s.views(ctx, results, false), nil
}

func (s *TestService) ParticipantResults(ctx context.Context, actor models.User, participantID string) ([]dto.TestResultView, error) {
	if actor.Role == models.RoleParticipant && actor.ID != participantID {
		return nil, forbidden("Access denied")
	}
	results, err := s.st.TestResults.Find(ctx, store.Q().Eq("participant_id", participantID).SortBy("submitted_at", false))
	if err != nil {
		return nil, err
	}
	return s.views(ctx, results, false), nil
}

// Result returns one result with the test's questions for review.
func (s *TestService) Result(ctx context.Context, actor models.User, id string) (dto.TestResultView, error) {
	r, err := s.st.TestResults.Get(ctx, id)
	if err != nil {
		return dto.TestResultView{}, lookup(err, "Test result")
	}
	if actor.Role == models.RoleParticipant && actor.ID != r.ParticipantID {
		return dto.TestResultView{}, forbidden("Access denied")
	}
	return s.views(ctx, []models.TestResult{r}, true)[0], nil
}
