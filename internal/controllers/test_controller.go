package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type TestHandler struct {
	binder
	tests *services.TestService
}

func NewTestHandler(tests *services.TestService, v *validation.Validator) *TestHandler {
	return &TestHandler{binder: binder{v}, tests: tests}
}

// ProgramTests godoc
// @Summary      Tests of a program
// @Tags         tests
// @Produce      json
// @Security     BearerAuth
// @Param        pid path string true "Program ID"
// @Success      200 {array} models.Test
// @Router       /api/tests/program/{pid} [get]
func (h *TestHandler) ProgramTests(c *fiber.Ctx) error {
	list, err := h.tests.ByProgram(c.UserContext(), c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *TestHandler) GetTest(c *fiber.Ctx) error {
	out, err := h.tests.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateTest godoc
// @Summary      Create a pre- or post-test
// @Tags         tests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TestCreate true "Test"
// @Success      201 {object} models.Test
// @Failure      400 {object} map[string]string
// @Router       /api/tests [post]
func (h *TestHandler) CreateTest(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.TestCreate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.tests.Create(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TestHandler) DeleteTest(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.tests.Delete(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Test deleted successfully")
}

// SubmitTest godoc
// @Summary      Submit answers
// @Description  For shuffled post-tests send back the question_indices that came with the test
// @Tags         tests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TestSubmit true "Answers"
// @Success      200 {object} models.TestResult
// @Failure      404 {object} map[string]string
// @Router       /api/tests/submit [post]
func (h *TestHandler) SubmitTest(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.TestSubmit
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.tests.Submit(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *TestHandler) SessionResults(c *fiber.Ctx) error {
	list, err := h.tests.SessionResults(c.UserContext(), c.Params("sid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *TestHandler) ParticipantResults(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.tests.ParticipantResults(c.UserContext(), u, c.Params("pid"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Result godoc
// @Summary      One result with its questions
// @Tags         tests
// @Produce      json
// @Security     BearerAuth
// @Param        rid path string true "Result ID"
// @Success      200 {object} dto.TestResultView
// @Failure      404 {object} map[string]string
// @Router       /api/tests/results/{rid} [get]
func (h *TestHandler) Result(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	out, err := h.tests.Result(c.UserContext(), u, c.Params("rid"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
