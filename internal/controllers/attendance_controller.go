package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type AttendanceHandler struct {
	binder
	attendance *services.AttendanceService
}

func NewAttendanceHandler(attendance *services.AttendanceService, v *validation.Validator) *AttendanceHandler {
	return &AttendanceHandler{binder: binder{v}, attendance: attendance}
}

// ClockIn godoc
// @Summary      Clock in for today
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ClockRequest true "Session"
// @Success      200 {object} dto.ClockResponse
// @Router       /api/attendance/clock-in [post]
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ClockRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.attendance.ClockIn(c.UserContext(), u, req.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ClockOut godoc
// @Summary      Clock out for today
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ClockRequest true "Session"
// @Success      200 {object} dto.ClockResponse
// @Failure      404 {object} map[string]string
// @Router       /api/attendance/clock-out [post]
func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ClockRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.attendance.ClockOut(c.UserContext(), u, req.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *AttendanceHandler) SessionAttendance(c *fiber.Ctx) error {
	list, err := h.attendance.ForSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *AttendanceHandler) ParticipantAttendance(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.attendance.ForParticipant(c.UserContext(), u, c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}
