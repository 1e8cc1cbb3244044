package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type SessionHandler struct {
	binder
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService, v *validation.Validator) *SessionHandler {
	return &SessionHandler{binder: binder{v}, sessions: sessions}
}

// ListSessions godoc
// @Summary      List sessions visible to the caller
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name, company, program or location"
// @Param        company_id query string false "Company"
// @Param        program_id query string false "Program"
// @Param        start_date query string false "YYYY-MM-DD, inclusive"
// @Param        end_date query string false "YYYY-MM-DD, inclusive"
// @Success      200 {array} dto.SessionView
// @Router       /api/sessions [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var f dto.SessionFilter
	if err := h.query(c, &f); err != nil {
		return err
	}
	list, err := h.sessions.List(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Inline participants and supervisors are matched to existing users or created
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SessionCreate true "Session"
// @Success      200 {object} dto.CreatedResponse
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /api/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.SessionCreate
	if err := h.body(c, &req); err != nil {
		return err
	}
	id, err := h.sessions.Create(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreatedResponse{Message: "Session created successfully", SessionID: id})
}

// Calendar godoc
// @Summary      Sessions starting within a year of today
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SessionView
// @Router       /api/sessions/calendar [get]
func (h *SessionHandler) Calendar(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.sessions.Calendar(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// PastTraining godoc
// @Summary      Completed sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        month query int false "1-12, requires year"
// @Param        year query int false "Year"
// @Success      200 {array} dto.SessionView
// @Router       /api/sessions/past-training [get]
func (h *SessionHandler) PastTraining(c *fiber.Ctx) error {
	list, err := h.sessions.PastTraining(c.UserContext(), c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetSession godoc
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SessionView
// @Failure      404 {object} map[string]string
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.sessions.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateSession godoc
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        body body dto.SessionUpdate true "Fields to change"
// @Success      200 {object} dto.SessionView
// @Router       /api/sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.SessionUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.sessions.Update(c.UserContext(), u, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Delete(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Session deleted successfully")
}

func (h *SessionHandler) MarkCompleted(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.sessions.MarkCompleted(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Session marked as completed")
}

func (h *SessionHandler) ToggleStatus(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	status, err := h.sessions.ToggleStatus(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Message: "Session status updated to " + status, Status: status})
}

func (h *SessionHandler) Archive(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Archive(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Session archived")
}

// AddParticipants godoc
// @Summary      Enrol participants
// @Description  Identifiers are IC numbers or user IDs
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        body body dto.AddParticipantsRequest true "Identifiers"
// @Success      200 {object} dto.AddParticipantsResponse
// @Failure      404 {object} map[string]string
// @Router       /api/sessions/{id}/participants [post]
func (h *SessionHandler) AddParticipants(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.AddParticipantsRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	n, err := h.sessions.AddParticipants(c.UserContext(), u, c.Params("id"), req.ParticipantIDs)
	if err != nil {
		return err
	}
	return c.JSON(dto.AddParticipantsResponse{Message: "Participants added successfully", AddedCount: n})
}

func (h *SessionHandler) Participants(c *fiber.Ctx) error {
	list, err := h.sessions.Participants(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *SessionHandler) ResultsSummary(c *fiber.Ctx) error {
	out, err := h.sessions.ResultsSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SessionHandler) Status(c *fiber.Ctx) error {
	out, err := h.sessions.Status(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SessionHandler) CompletionChecklist(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.sessions.CompletionChecklist(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AssignedParticipants godoc
// @Summary      The calling trainer's share of participants
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {array} models.User
// @Failure      403 {object} map[string]string
// @Router       /api/sessions/{id}/assigned-participants [get]
func (h *SessionHandler) AssignedParticipants(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.sessions.AssignedParticipants(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *SessionHandler) Distribution(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.sessions.Distribution(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AvailableTests godoc
// @Summary      Tests the participant may take now
// @Description  Answers are removed; post-tests come shuffled with question_indices
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {array} dto.AvailableTest
// @Router       /api/sessions/{id}/tests/available [get]
func (h *SessionHandler) AvailableTests(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.sessions.AvailableTests(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// MarkAttendance godoc
// @Summary      Mark a participant present or absent
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        pid path string true "Participant ID"
// @Param        status query string true "present or absent"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} map[string]string
// @Router       /api/sessions/{id}/participants/{pid}/attendance [post]
func (h *SessionHandler) MarkAttendance(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.sessions.MarkAttendance(c.UserContext(), u, c.Params("id"), c.Params("pid"), c.Query("status")); err != nil {
		return err
	}
	return message(c, "Attendance marked as "+c.Query("status"))
}

func (h *SessionHandler) AttendanceStatus(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.sessions.AttendanceStatus(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Release godoc
// @Summary      Open a gate for every participant
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        gate path string true "pre-test, post-test, feedback or certificate"
// @Success      200 {object} dto.MessageResponse
// @Router       /api/sessions/{id}/release/{gate} [post]
func (h *SessionHandler) Release(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	gate := strings.ReplaceAll(c.Params("gate"), "-", "_")
	msg, err := h.sessions.Release(c.UserContext(), u, c.Params("id"), gate)
	if err != nil {
		return err
	}
	return message(c, msg)
}
