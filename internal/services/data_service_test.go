package services

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
)

func TestUpdateTestResultIsAudited(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	p := f.user(t, models.RoleParticipant, "Siti", "900101-14-5678")
	comp := f.company(t, "Shell")
	sess := f.session(t, "", comp.ID, p.ID)
	res := models.TestResult{
		ID: models.NewID(), SessionID: sess.ID, ParticipantID: p.ID,
		Answers: []int{0, 1}, Score: 50, TotalQuestions: 2, CorrectAnswers: 1, SubmittedAt: f.now,
	}
	require.NoError(t, f.st.TestResults.Insert(f.ctx, res))

	_, err := f.svc.Data.UpdateTestResult(f.ctx, admin, res.ID, dto.TestResultPatch{}, "127.0.0.1")
	requireStatus(t, err, fiber.StatusBadRequest)
	_, err = f.svc.Data.UpdateTestResult(f.ctx, p, res.ID, dto.TestResultPatch{}, "")
	requireStatus(t, err, fiber.StatusForbidden)

	score := 90.0
	updated, err := f.svc.Data.UpdateTestResult(f.ctx, admin, res.ID, dto.TestResultPatch{Score: &score}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 90.0, updated.Score)

	logs, err := f.svc.Audit.Logs(f.ctx, admin, ResourceTestResult, res.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionUpdate, logs[0].Action)
	assert.Equal(t, admin.Email, logs[0].UserEmail)
	assert.Equal(t, "score: 50 → 90", logs[0].ChangesSummary)

	rows, err := f.svc.Data.TestResults(f.ctx, admin, dto.DataFilter{CompanyID: comp.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Siti", rows[0]["participant_name"])
	assert.Equal(t, "Shell", rows[0]["company_name"])
	assert.Equal(t, 90.0, rows[0]["score"])

	rows, err = f.svc.Data.TestResults(f.ctx, admin, dto.DataFilter{CompanyID: "other"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = f.svc.Audit.Logs(f.ctx, p, ResourceTestResult, res.ID)
	requireStatus(t, err, fiber.StatusForbidden)
}

func TestDeleteFeedbackIsAudited(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	fb := models.CourseFeedback{
		ID: models.NewID(), SessionID: "s", ParticipantID: "p",
		Responses: []models.FeedbackResponse{{Question: "Rate", Answer: 4}}, SubmittedAt: f.now,
	}
	require.NoError(t, f.st.Feedback.Insert(f.ctx, fb))

	require.NoError(t, f.svc.Data.DeleteFeedback(f.ctx, admin, fb.ID, ""))
	requireStatus(t, f.svc.Data.DeleteFeedback(f.ctx, admin, fb.ID, ""), fiber.StatusNotFound)

	logs, err := f.svc.Audit.Logs(f.ctx, admin, ResourceFeedback, fb.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionDelete, logs[0].Action)
	assert.Empty(t, logs[0].ChangesSummary)
	assert.NotNil(t, logs[0].OldData)
	assert.Nil(t, logs[0].NewData)
}

func TestUpdateAttendanceTimestamps(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	in := f.now.Add(-time.Hour)
	rec := models.Attendance{ID: models.NewID(), SessionID: "s", ParticipantID: "p", Date: "2026-10-19", ClockInTime: &in, CreatedAt: f.now}
	require.NoError(t, f.st.Attendance.Insert(f.ctx, rec))

	_, err := f.svc.Data.UpdateAttendance(f.ctx, admin, rec.ID, dto.AttendancePatch{ClockOut: "5pm"}, "")
	requireStatus(t, err, fiber.StatusBadRequest)

	out, err := f.svc.Data.UpdateAttendance(f.ctx, admin, rec.ID, dto.AttendancePatch{ClockOut: "2026-10-19T17:00:00Z"}, "")
	require.NoError(t, err)
	require.NotNil(t, out.ClockOutTime)
	assert.Equal(t, 17, out.ClockOutTime.Hour())
	assert.True(t, out.ClockInTime.Equal(in))
}

func TestChangesSummary(t *testing.T) {
	assert.Equal(t, "No changes detected", changesSummary(map[string]any{"a": 1.0}, map[string]any{"a": 1.0}))
	assert.Equal(t, "a: 1 → 2, b: x → y", changesSummary(
		map[string]any{"a": 1.0, "b": "x", "c": true},
		map[string]any{"a": 2.0, "b": "y", "c": true, "d": "new"},
	))
}
