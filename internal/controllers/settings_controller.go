package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type SettingsHandler struct {
	binder
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService, v *validation.Validator) *SettingsHandler {
	return &SettingsHandler{binder: binder{v}, settings: settings}
}

// GetSettings godoc
// @Summary      Branding settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} models.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settings.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Update branding settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SettingsUpdate true "Fields to change"
// @Success      200 {object} models.Settings
// @Failure      403 {object} map[string]string
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.SettingsUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.settings.Update(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
