package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

// ChecklistHandler serves checklist templates, vehicle checklists, their
// photos and participants' vehicle details.
type ChecklistHandler struct {
	binder
	checklists *services.ChecklistService
}

func NewChecklistHandler(checklists *services.ChecklistService, v *validation.Validator) *ChecklistHandler {
	return &ChecklistHandler{binder: binder{v}, checklists: checklists}
}

func (h *ChecklistHandler) Templates(c *fiber.Ctx) error {
	list, err := h.checklists.Templates(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ChecklistHandler) ProgramTemplates(c *fiber.Ctx) error {
	list, err := h.checklists.ProgramTemplates(c.UserContext(), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// SaveTemplate godoc
// @Summary      Create a program's checklist or add items to it
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ChecklistTemplateRequest true "Template"
// @Success      200 {object} models.ChecklistTemplate
// @Router       /api/checklist-templates [post]
func (h *ChecklistHandler) SaveTemplate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ChecklistTemplateRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.checklists.SaveTemplate(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ChecklistHandler) UpdateTemplate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ChecklistTemplateUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.checklists.UpdateTemplate(c.UserContext(), u, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ChecklistHandler) DeleteTemplate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.checklists.DeleteTemplate(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Template deleted successfully")
}

// DeleteItem godoc
// @Summary      Remove one item from a template
// @Tags         checklists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Param        index path int true "Zero-based item index"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} map[string]string
// @Router       /api/checklist-templates/{id}/items/{index} [delete]
func (h *ChecklistHandler) DeleteItem(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid item index")
	}
	if err := h.checklists.DeleteItem(c.UserContext(), u, c.Params("id"), index); err != nil {
		return err
	}
	return message(c, "Item deleted successfully")
}

// Submit godoc
// @Summary      Record a vehicle inspection
// @Tags         checklists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ChecklistSubmit true "Checklist"
// @Success      200 {object} map[string]string
// @Router       /api/checklists/submit [post]
func (h *ChecklistHandler) Submit(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ChecklistSubmit
	if err := h.body(c, &req); err != nil {
		return err
	}
	id, err := h.checklists.Submit(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Checklist submitted successfully", "checklist_id": id})
}

func (h *ChecklistHandler) SessionChecklists(c *fiber.Ctx) error {
	list, err := h.checklists.ForSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ChecklistHandler) ParticipantChecklists(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.checklists.ForParticipant(c.UserContext(), u, c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ChecklistHandler) Latest(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.checklists.Latest(c.UserContext(), u, c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Upload a checklist photo
// @Tags         checklists
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image"
// @Success      200 {object} dto.PhotoResponse
// @Failure      400 {object} map[string]string
// @Router       /api/checklist-photos/upload [post]
func (h *ChecklistHandler) UploadPhoto(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	up, err := formFile(c, "file")
	if err != nil {
		return err
	}
	url, err := h.checklists.UploadPhoto(u, up)
	if err != nil {
		return err
	}
	return c.JSON(dto.PhotoResponse{PhotoURL: url})
}

func (h *ChecklistHandler) SubmitVehicle(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.VehicleDetailsSubmit
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.checklists.SubmitVehicle(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Vehicle answers null when nothing was submitted.
func (h *ChecklistHandler) Vehicle(c *fiber.Ctx) error {
	out, err := h.checklists.Vehicle(c.UserContext(), c.Params("sid"), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
