package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type AccessHandler struct {
	binder
	access *services.AccessService
}

func NewAccessHandler(access *services.AccessService, v *validation.Validator) *AccessHandler {
	return &AccessHandler{binder: binder{v}, access: access}
}

// UpdateAccess godoc
// @Summary      Change one participant's gates
// @Tags         participant-access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        participant_id query string true "Participant ID"
// @Param        session_id query string true "Session ID"
// @Param        body body dto.AccessUpdate true "Flags to set"
// @Success      200 {object} models.ParticipantAccess
// @Failure      403 {object} map[string]string
// @Router       /api/participant-access/update [post]
func (h *AccessHandler) UpdateAccess(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	pid, sid := c.Query("participant_id"), c.Query("session_id")
	if pid == "" || sid == "" {
		return fiber.NewError(fiber.StatusBadRequest, "participant_id and session_id are required")
	}
	var req dto.AccessUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.access.Update(c.UserContext(), u, pid, sid, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MyAccess godoc
// @Summary      The calling participant's gates for a session
// @Tags         participant-access
// @Produce      json
// @Security     BearerAuth
// @Param        session_id path string true "Session ID"
// @Success      200 {object} models.ParticipantAccess
// @Router       /api/participant-access/{session_id} [get]
func (h *AccessHandler) MyAccess(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.access.Mine(c.UserContext(), u, c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *AccessHandler) SessionAccess(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.access.ForSession(c.UserContext(), u, c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// ToggleAccess godoc
// @Summary      Flip one gate for the whole session
// @Tags         participant-access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        session_id path string true "Session ID"
// @Param        body body dto.ToggleAccessRequest true "Gate"
// @Success      200 {object} dto.CountResponse
// @Failure      400 {object} map[string]string
// @Router       /api/participant-access/session/{session_id}/toggle [post]
func (h *AccessHandler) ToggleAccess(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ToggleAccessRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	n, err := h.access.Toggle(c.UserContext(), u, c.Params("session_id"), req)
	if err != nil {
		return err
	}
	state := "disabled"
	if req.Enabled {
		state = "enabled"
	}
	return c.JSON(dto.CountResponse{
		Message: fmt.Sprintf("%s access %s for %d participants", req.AccessType, state, n),
		Count:   n,
	})
}
