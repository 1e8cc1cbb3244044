package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Access.GetOrCreate(f.ctx, "p", "s")
	require.NoError(t, err)
	assert.False(t, a.CanAccessPreTest)

	b, err := f.svc.Access.GetOrCreate(f.ctx, "p", "s")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	n, err := f.st.Access.Count(f.ctx, store.Q())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAccessUpdateByCoordinator(t *testing.T) {
	f := newFixture(t)
	coord := f.user(t, models.RoleCoordinator, "C", "C1")
	stranger := f.user(t, models.RoleCoordinator, "D", "C2")
	p := f.user(t, models.RoleParticipant, "P", "P1")
	sess := f.session(t, "", "", p.ID)
	sess.CoordinatorID = coord.ID
	require.NoError(t, f.st.Sessions.Save(f.ctx, sess))

	open := true
	_, err := f.svc.Access.Update(f.ctx, stranger, p.ID, sess.ID, dto.AccessUpdate{CanAccessPreTest: &open})
	requireStatus(t, err, fiber.StatusForbidden)
	_, err = f.svc.Access.Update(f.ctx, p, p.ID, sess.ID, dto.AccessUpdate{CanAccessPreTest: &open})
	requireStatus(t, err, fiber.StatusForbidden)

	a, err := f.svc.Access.Update(f.ctx, coord, p.ID, sess.ID, dto.AccessUpdate{CanAccessPreTest: &open})
	require.NoError(t, err)
	assert.True(t, a.CanAccessPreTest)
	assert.False(t, a.CanAccessPostTest)

	mine, err := f.svc.Access.Mine(f.ctx, p, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, mine.ID)
	assert.True(t, mine.CanAccessPreTest)
}

func TestToggleAndRelease(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	p1 := f.user(t, models.RoleParticipant, "P1", "P1")
	p2 := f.user(t, models.RoleParticipant, "P2", "P2")
	sess := f.session(t, "", "", p1.ID, p2.ID)

	n, err := f.svc.Access.Toggle(f.ctx, admin, sess.ID, dto.ToggleAccessRequest{AccessType: GateFeedback, Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = f.svc.Access.Toggle(f.ctx, admin, sess.ID, dto.ToggleAccessRequest{AccessType: GateCertificate, Enabled: true})
	requireStatus(t, err, fiber.StatusBadRequest)
	_, err = f.svc.Access.Release(f.ctx, admin, sess.ID, GateChecklist)
	requireStatus(t, err, fiber.StatusBadRequest)
	_, err = f.svc.Access.Release(f.ctx, p1, sess.ID, GatePostTest)
	requireStatus(t, err, fiber.StatusForbidden)

	n, err = f.svc.Access.Release(f.ctx, admin, sess.ID, GatePostTest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := f.svc.Access.ForSession(f.ctx, admin, sess.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, a := range list {
		assert.True(t, a.CanAccessFeedback)
		assert.True(t, a.CanAccessPostTest)
		assert.False(t, a.CanAccessPreTest)
	}

	require.NoError(t, f.svc.Access.DeleteForSession(f.ctx, sess.ID))
	list, err = f.svc.Access.ForSession(f.ctx, admin, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
