package controllers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type ReportHandler struct {
	binder
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService, v *validation.Validator) *ReportHandler {
	return &ReportHandler{binder: binder{v}, reports: reports}
}

// CoordinatorReports godoc
// @Summary      Reports of the calling coordinator, or all for admins
// @Tags         training-reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ReportView
// @Router       /api/training-reports/coordinator [get]
func (h *ReportHandler) CoordinatorReports(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.reports.Coordinator(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ReportHandler) AllReports(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.reports.All(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Generate godoc
// @Summary      Open a draft report for a session
// @Tags         training-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ReportGenerate true "Session"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/training-reports/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ReportGenerate
	if err := h.body(c, &req); err != nil {
		return err
	}
	id, created, err := h.reports.Generate(c.UserContext(), u, req.SessionID)
	if err != nil {
		return err
	}
	msg := "Report created successfully"
	if !created {
		msg = "Report already exists"
	}
	return c.JSON(fiber.Map{"message": msg, "report_id": id})
}

func (h *ReportHandler) SessionReport(c *fiber.Ctx) error {
	out, err := h.reports.ForSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ReportHandler) UploadDocx(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	up, err := formFile(c, "file")
	if err != nil {
		return err
	}
	out, err := h.reports.UploadDocx(c.UserContext(), u, c.Params("sid"), up)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UploadPDF godoc
// @Summary      Upload the final report PDF
// @Description  Marks the report submitted
// @Tags         training-reports
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        sid path string true "Session ID"
// @Param        file formData file true "PDF"
// @Success      200 {object} models.TrainingReport
// @Router       /api/training-reports/{sid}/upload-final-pdf [post]
func (h *ReportHandler) UploadPDF(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	up, err := formFile(c, "file")
	if err != nil {
		return err
	}
	out, err := h.reports.UploadPDF(c.UserContext(), u, c.Params("sid"), up)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ReportHandler) DownloadDocx(c *fiber.Ctx) error {
	path, err := h.reports.DocxFile(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.Download(path, filepath.Base(path))
}

func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	path, err := h.reports.PDFFile(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.Download(path, filepath.Base(path))
}

func (h *ReportHandler) SubmitFinal(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.reports.SubmitFinal(c.UserContext(), u, c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
