package controllers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/services"
)

type CertificateHandler struct {
	certs *services.CertificateService
}

func NewCertificateHandler(certs *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{certs: certs}
}

// MyCertificates godoc
// @Summary      The calling participant's certificates
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Certificate
// @Router       /api/certificates/my-certificates [get]
func (h *CertificateHandler) MyCertificates(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.certs.Mine(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *CertificateHandler) ParticipantCertificates(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.certs.ForParticipant(c.UserContext(), u, c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *CertificateHandler) SessionCertificates(c *fiber.Ctx) error {
	list, err := h.certs.ForSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *CertificateHandler) Repository(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.certs.Repository(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Generate godoc
// @Summary      Issue a certificate
// @Description  Returns the existing certificate when one was already issued
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Param        sid path string true "Session ID"
// @Param        pid path string true "Participant ID"
// @Success      200 {object} map[string]string
// @Router       /api/certificates/generate/{sid}/{pid} [post]
func (h *CertificateHandler) Generate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	id, created, err := h.certs.Generate(c.UserContext(), u, c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	msg := "Certificate generated successfully"
	if !created {
		msg = "Certificate already exists"
	}
	return c.JSON(fiber.Map{"message": msg, "certificate_id": id})
}

// Upload godoc
// @Summary      Upload a certificate PDF
// @Tags         certificates
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        sid path string true "Session ID"
// @Param        pid path string true "Participant ID"
// @Param        file formData file true "PDF"
// @Success      200 {object} services.UploadResult
// @Failure      400 {object} map[string]string
// @Router       /api/certificates/upload/{sid}/{pid} [post]
func (h *CertificateHandler) Upload(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	up, err := formFile(c, "file")
	if err != nil {
		return err
	}
	out, err := h.certs.Upload(c.UserContext(), u, c.Params("sid"), c.Params("pid"), up)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Download a certificate PDF
// @Tags         certificates
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        cid path string true "Certificate ID"
// @Success      200 {file} file
// @Failure      404 {object} map[string]string
// @Router       /api/certificates/download/{cid} [get]
func (h *CertificateHandler) Download(c *fiber.Ctx) error {
	path, err := h.certs.File(c.UserContext(), c.Params("cid"))
	if err != nil {
		return err
	}
	return c.Download(path, filepath.Base(path))
}

func (h *CertificateHandler) DownloadFor(c *fiber.Ctx) error {
	path, err := h.certs.FileFor(c.UserContext(), c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.Download(path, filepath.Base(path))
}

func (h *CertificateHandler) Eligibility(c *fiber.Ctx) error {
	out, err := h.certs.Eligibility(c.UserContext(), c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
