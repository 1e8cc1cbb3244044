package services

import (
	"context"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type FeedbackService struct {
	st     *store.Stores
	access *AccessService
	names  *names
	clock  utils.Clock
}

func NewFeedbackService(st *store.Stores, access *AccessService, n *names, clock utils.Clock) *FeedbackService {
	return &FeedbackService{st: st, access: access, names: n, clock: clock}
}

func (s *FeedbackService) Templates(ctx context.Context, programID string) ([]models.FeedbackTemplate, error) {
	return s.st.FeedbackTemplates.Find(ctx, store.Q().Eq("program_id", programID))
}

// SaveTemplate keeps one template per program; a second save replaces the
// questions of the first.
func (s *FeedbackService) SaveTemplate(ctx context.Context, actor models.User, req dto.FeedbackTemplateRequest) (models.FeedbackTemplate, error) {
	if err := requireRole(actor, "Unauthorized", models.RoleAdmin, models.RoleAssistantAdmin); err != nil {
		return models.FeedbackTemplate{}, err
	}
	t, err := s.st.FeedbackTemplates.FindOne(ctx, store.Q().Eq("program_id", req.ProgramID))
	switch {
	case err == nil:
		t.Questions = req.Questions
		if req.Title != "" {
			t.Title = req.Title
		}
		return t, s.st.FeedbackTemplates.Save(ctx, t)
	case !isNotFound(err):
		return t, err
	}

	t = models.FeedbackTemplate{
		ID:        models.NewID(),
		ProgramID: req.ProgramID,
		Title:     req.Title,
		Questions: req.Questions,
		CreatedAt: s.clock.Now(),
	}
	return t, s.st.FeedbackTemplates.Insert(ctx, t)
}

func (s *FeedbackService) DeleteTemplate(ctx context.Context, actor models.User, id string) error {
	if err := requireRole(actor, "Only admins can delete templates", models.RoleAdmin); err != nil {
		return err
	}
	return lookup(s.st.FeedbackTemplates.Delete(ctx, id), "Template")
}

func (s *FeedbackService) Submit(ctx context.Context, actor models.User, req dto.FeedbackSubmit) (models.CourseFeedback, error) {
	if err := requireRole(actor, "Only participants can submit feedback", models.RoleParticipant); err != nil {
		return models.CourseFeedback{}, err
	}
	f := models.CourseFeedback{
		ID:                 models.NewID(),
		SessionID:          req.SessionID,
		ParticipantID:      actor.ID,
		FeedbackTemplateID: req.FeedbackTemplateID,
		Responses:          req.Responses,
		SubmittedAt:        s.clock.Now(),
	}
	if err := s.st.Feedback.Insert(ctx, f); err != nil {
		return f, err
	}
	_, err := s.access.Mutate(ctx, actor.ID, req.SessionID, func(a *models.ParticipantAccess) {
		a.FeedbackCompleted = true
	})
	return f, err
}

func (s *FeedbackService) views(ctx context.Context, list []models.CourseFeedback) []dto.FeedbackView {
	out := make([]dto.FeedbackView, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FeedbackView{
			CourseFeedback:  f,
			ParticipantName: s.names.userName(ctx, f.ParticipantID),
			SessionName:     s.names.sessionName(ctx, f.SessionID),
		})
	}
	return out
}

func (s *FeedbackService) ForSession(ctx context.Context, sessionID string) ([]dto.FeedbackView, error) {
	list, err := s.st.Feedback.Find(ctx, store.Q().Eq("session_id", sessionID).SortBy("submitted_at", true))
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}

// ForCompany collects feedback across every session run for a company.
func (s *FeedbackService) ForCompany(ctx context.Context, companyID string) ([]dto.FeedbackView, error) {
	sessions, err := s.st.Sessions.Find(ctx, store.Q().Eq("company_id", companyID))
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return []dto.FeedbackView{}, nil
	}
	ids := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	list, err := s.st.Feedback.Find(ctx, store.Q().In("session_id", ids).SortBy("submitted_at", true))
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list), nil
}
