package services

import (
	"context"

	"mddrc-backend/dto"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

type SettingsService struct {
	st    *store.Stores
	clock utils.Clock
}

func NewSettingsService(st *store.Stores, clock utils.Clock) *SettingsService {
	return &SettingsService{st: st, clock: clock}
}

// Get returns the single settings document, storing the defaults on
// first read.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	set, err := s.st.Settings.Get(ctx, models.SettingsID)
	if err == nil || !isNotFound(err) {
		return set, err
	}
	set = models.DefaultSettings(s.clock.Now())
	if err := s.st.Settings.Insert(ctx, set); err != nil && !isDuplicate(err) {
		return set, err
	}
	return s.st.Settings.Get(ctx, models.SettingsID)
}

func (s *SettingsService) Update(ctx context.Context, actor models.User, req dto.SettingsUpdate) (models.Settings, error) {
	if err := requireRole(actor, "Only admins can update settings", models.RoleAdmin); err != nil {
		return models.Settings{}, err
	}
	set, err := s.Get(ctx)
	if err != nil {
		return set, err
	}
	setIf(&set.CompanyName, req.CompanyName)
	setIf(&set.PrimaryColor, req.PrimaryColor)
	setIf(&set.LogoURL, req.LogoURL)
	set.UpdatedAt = s.clock.Now()
	return set, s.st.Settings.Save(ctx, set)
}
