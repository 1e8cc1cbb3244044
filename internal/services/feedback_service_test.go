package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
)

func TestFeedbackTemplateUpsert(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")

	first, err := f.svc.Feedback.SaveTemplate(f.ctx, admin, dto.FeedbackTemplateRequest{
		ProgramID: "prog",
		Title:     "Course feedback",
		Questions: []models.FeedbackQuestion{{Question: "Rate the trainer", Type: "rating"}},
	})
	require.NoError(t, err)

	second, err := f.svc.Feedback.SaveTemplate(f.ctx, admin, dto.FeedbackTemplateRequest{
		ProgramID: "prog",
		Questions: []models.FeedbackQuestion{{Question: "Comments", Type: "text"}},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Course feedback", second.Title)

	list, err := f.svc.Feedback.Templates(f.ctx, "prog")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Questions, 1)
	assert.Equal(t, "Comments", list[0].Questions[0].Question)

	requireStatus(t, f.svc.Feedback.DeleteTemplate(f.ctx, admin, "nope"), fiber.StatusNotFound)
	require.NoError(t, f.svc.Feedback.DeleteTemplate(f.ctx, admin, first.ID))
}

func TestSubmitFeedback(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, models.RoleParticipant, "Wei", "P1")
	comp := f.company(t, "Maxis")
	sess := f.session(t, "", comp.ID, p.ID)

	_, err := f.svc.Feedback.Submit(f.ctx, p, dto.FeedbackSubmit{
		SessionID: sess.ID,
		Responses: []models.FeedbackResponse{{Question: "Rate", Answer: 5}, {Question: "Notes", Answer: "Great"}},
	})
	require.NoError(t, err)

	a, err := f.st.Access.FindOne(f.ctx, accessQuery(p.ID, sess.ID))
	require.NoError(t, err)
	assert.True(t, a.FeedbackCompleted)

	list, err := f.svc.Feedback.ForCompany(f.ctx, comp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Wei", list[0].ParticipantName)
	assert.Equal(t, "Batch 1", list[0].SessionName)

	none, err := f.svc.Feedback.ForCompany(f.ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)

	coord := f.user(t, models.RoleCoordinator, "C", "C1")
	_, err = f.svc.Feedback.Submit(f.ctx, coord, dto.FeedbackSubmit{SessionID: sess.ID})
	requireStatus(t, err, fiber.StatusForbidden)
}
