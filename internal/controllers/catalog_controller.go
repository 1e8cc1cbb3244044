package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

// CatalogHandler serves companies and programs.
type CatalogHandler struct {
	binder
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService, v *validation.Validator) *CatalogHandler {
	return &CatalogHandler{binder: binder{v}, catalog: catalog}
}

// ListCompanies godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name contains"
// @Success      200 {array} models.Company
// @Router       /api/companies [get]
func (h *CatalogHandler) ListCompanies(c *fiber.Ctx) error {
	list, err := h.catalog.Companies(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// CreateCompany godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompanyRequest true "Company"
// @Success      201 {object} models.Company
// @Router       /api/companies [post]
func (h *CatalogHandler) CreateCompany(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.catalog.CreateCompany(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) GetCompany(c *fiber.Ctx) error {
	out, err := h.catalog.Company(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateCompany(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.catalog.UpdateCompany(c.UserContext(), u, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteCompany(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCompany(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Company deleted successfully")
}

// ListPrograms godoc
// @Summary      List programs
// @Tags         programs
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name contains"
// @Success      200 {array} models.Program
// @Router       /api/programs [get]
func (h *CatalogHandler) ListPrograms(c *fiber.Ctx) error {
	list, err := h.catalog.Programs(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// CreateProgram godoc
// @Summary      Create a program
// @Description  pass_percentage defaults to 70
// @Tags         programs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProgramRequest true "Program"
// @Success      201 {object} models.Program
// @Router       /api/programs [post]
func (h *CatalogHandler) CreateProgram(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ProgramRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.catalog.CreateProgram(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) GetProgram(c *fiber.Ctx) error {
	out, err := h.catalog.Program(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateProgram(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ProgramUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.catalog.UpdateProgram(c.UserContext(), u, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteProgram(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProgram(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "Program deleted successfully")
}
