package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type FeedbackHandler struct {
	binder
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService, v *validation.Validator) *FeedbackHandler {
	return &FeedbackHandler{binder: binder{v}, feedback: feedback}
}

func (h *FeedbackHandler) Templates(c *fiber.Ctx) error {
	list, err := h.feedback.Templates(c.UserContext(), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// SaveTemplate godoc
// @Summary      Create or replace a program's feedback template
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FeedbackTemplateRequest true "Template"
// @Success      200 {object} models.FeedbackTemplate
// @Router       /api/feedback/templates [post]
func (h *FeedbackHandler) SaveTemplate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.FeedbackTemplateRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.feedback.SaveTemplate(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *FeedbackHandler) DeleteTemplate(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.feedback.DeleteTemplate(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Template deleted successfully")
}

// Submit godoc
// @Summary      Submit course feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FeedbackSubmit true "Responses"
// @Success      200 {object} models.CourseFeedback
// @Router       /api/feedback/submit [post]
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.FeedbackSubmit
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.feedback.Submit(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *FeedbackHandler) SessionFeedback(c *fiber.Ctx) error {
	list, err := h.feedback.ForSession(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *FeedbackHandler) CompanyFeedback(c *fiber.Ctx) error {
	list, err := h.feedback.ForCompany(c.UserContext(), c.Params("cid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}
