package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/models"
)

func TestClockInOut(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, models.RoleParticipant, "Farid", "P1")
	sess := f.session(t, "", "", p.ID)

	_, err := f.svc.Attendance.ClockOut(f.ctx, p, sess.ID)
	requireStatus(t, err, fiber.StatusNotFound)

	in, err := f.svc.Attendance.ClockIn(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clocked in successfully", in.Message)

	again, err := f.svc.Attendance.ClockIn(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Already clocked in today", again.Message)
	assert.Equal(t, in.AttendanceID, again.AttendanceID)

	out, err := f.svc.Attendance.ClockOut(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clocked out successfully", out.Message)

	out, err = f.svc.Attendance.ClockOut(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Already clocked out today", out.Message)

	recs, err := f.svc.Attendance.ForSession(f.ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Farid", recs[0].ParticipantName)
	assert.Equal(t, f.now.Format("2006-01-02"), recs[0].Date)
	require.NotNil(t, recs[0].ClockOutTime)
}

func TestAttendanceAccess(t *testing.T) {
	f := newFixture(t)
	p := f.user(t, models.RoleParticipant, "P", "P1")
	q := f.user(t, models.RoleParticipant, "Q", "P2")
	trainer := f.user(t, models.RoleTrainer, "T", "T1")
	sess := f.session(t, "", "", p.ID)

	_, err := f.svc.Attendance.ClockIn(f.ctx, trainer, sess.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	_, err = f.svc.Attendance.ForParticipant(f.ctx, q, sess.ID, p.ID)
	requireStatus(t, err, fiber.StatusForbidden)

	recs, err := f.svc.Attendance.ForParticipant(f.ctx, trainer, sess.ID, p.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
