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

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	trainer := f.user(t, models.RoleTrainer, "T", "T1")

	set, err := f.svc.Settings.Get(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "#1e40af", set.PrimaryColor)
	n, err := f.st.Settings.Count(f.ctx, store.Q())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	color := "#ff0000"
	_, err = f.svc.Settings.Update(f.ctx, trainer, dto.SettingsUpdate{PrimaryColor: &color})
	requireStatus(t, err, fiber.StatusForbidden)

	set, err = f.svc.Settings.Update(f.ctx, admin, dto.SettingsUpdate{PrimaryColor: &color})
	require.NoError(t, err)
	assert.Equal(t, color, set.PrimaryColor)
	assert.Equal(t, models.DefaultSettings(f.now).CompanyName, set.CompanyName)

	set, err = f.svc.Settings.Get(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, color, set.PrimaryColor)
}
