package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

// DataHandler is the admin data-management surface. Every edit is audited
// with the client IP.
type DataHandler struct {
	binder
	data  *services.DataService
	audit *services.AuditService
}

func NewDataHandler(data *services.DataService, audit *services.AuditService, v *validation.Validator) *DataHandler {
	return &DataHandler{binder: binder{v}, data: data, audit: audit}
}

func (h *DataHandler) filter(c *fiber.Ctx) (dto.DataFilter, error) {
	var f dto.DataFilter
	return f, h.query(c, &f)
}

func updated(c *fiber.Ctx, what string, rec any) error {
	return c.JSON(dto.UpdatedResponse{Message: what + " updated successfully", Record: rec})
}

// TestResults godoc
// @Summary      All test results with names
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        session_id query string false "Session"
// @Param        company_id query string false "Company"
// @Param        program_id query string false "Program"
// @Param        start_date query string false "Sessions starting on or after"
// @Param        end_date query string false "Sessions ending on or before"
// @Success      200 {array} dto.DataRow
// @Router       /api/admin/data-management/test-results [get]
func (h *DataHandler) TestResults(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	rows, err := h.data.TestResults(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// UpdateTestResult godoc
// @Summary      Edit a test result
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Result ID"
// @Param        body body dto.TestResultPatch true "Fields to change"
// @Success      200 {object} dto.UpdatedResponse
// @Router       /api/admin/data-management/test-results/{id} [put]
func (h *DataHandler) UpdateTestResult(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.TestResultPatch
	if err := h.body(c, &req); err != nil {
		return err
	}
	rec, err := h.data.UpdateTestResult(c.UserContext(), u, c.Params("id"), req, c.IP())
	if err != nil {
		return err
	}
	return updated(c, "Test result", rec)
}

func (h *DataHandler) DeleteTestResult(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.data.DeleteTestResult(c.UserContext(), u, c.Params("id"), c.IP()); err != nil {
		return err
	}
	return message(c, "Test result deleted successfully")
}

func (h *DataHandler) Feedback(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	rows, err := h.data.Feedback(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func (h *DataHandler) UpdateFeedback(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.FeedbackPatch
	if err := h.body(c, &req); err != nil {
		return err
	}
	rec, err := h.data.UpdateFeedback(c.UserContext(), u, c.Params("id"), req, c.IP())
	if err != nil {
		return err
	}
	return updated(c, "Feedback", rec)
}

func (h *DataHandler) DeleteFeedback(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.data.DeleteFeedback(c.UserContext(), u, c.Params("id"), c.IP()); err != nil {
		return err
	}
	return message(c, "Feedback deleted successfully")
}

func (h *DataHandler) Attendance(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	rows, err := h.data.Attendance(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// UpdateAttendance godoc
// @Summary      Edit clock-in or clock-out times
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Attendance ID"
// @Param        body body dto.AttendancePatch true "RFC 3339 timestamps"
// @Success      200 {object} dto.UpdatedResponse
// @Router       /api/admin/data-management/attendance/{id} [put]
func (h *DataHandler) UpdateAttendance(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.AttendancePatch
	if err := h.body(c, &req); err != nil {
		return err
	}
	rec, err := h.data.UpdateAttendance(c.UserContext(), u, c.Params("id"), req, c.IP())
	if err != nil {
		return err
	}
	return updated(c, "Attendance", rec)
}

func (h *DataHandler) DeleteAttendance(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.data.DeleteAttendance(c.UserContext(), u, c.Params("id"), c.IP()); err != nil {
		return err
	}
	return message(c, "Attendance deleted successfully")
}

func (h *DataHandler) Checklists(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	rows, err := h.data.Checklists(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func (h *DataHandler) UpdateChecklist(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ChecklistPatch
	if err := h.body(c, &req); err != nil {
		return err
	}
	rec, err := h.data.UpdateChecklist(c.UserContext(), u, c.Params("id"), req, c.IP())
	if err != nil {
		return err
	}
	return updated(c, "Checklist", rec)
}

func (h *DataHandler) DeleteChecklist(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.data.DeleteChecklist(c.UserContext(), u, c.Params("id"), c.IP()); err != nil {
		return err
	}
	return message(c, "Checklist deleted successfully")
}

// AuditLogs godoc
// @Summary      Edit history of one record
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "test_result, feedback, attendance or checklist"
// @Param        id path string true "Record ID"
// @Success      200 {array} dto.AuditLogView
// @Router       /api/admin/data-management/audit-logs/{type}/{id} [get]
func (h *DataHandler) AuditLogs(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.audit.Logs(c.UserContext(), u, c.Params("type"), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}
