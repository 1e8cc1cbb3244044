package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type UserHandler struct {
	binder
	users *services.UserService
}

func NewUserHandler(users *services.UserService, v *validation.Validator) *UserHandler {
	return &UserHandler{binder: binder{v}, users: users}
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role query string false "Role"
// @Param        search query string false "Name, email or IC"
// @Param        company_id query string false "Company"
// @Success      200 {array} models.User
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var f dto.UserFilter
	if err := h.query(c, &f); err != nil {
		return err
	}
	list, err := h.users.List(c.UserContext(), u, f)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} models.User
// @Failure      404 {object} map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.users.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        body body dto.UserUpdate true "Fields to change"
// @Success      200 {object} models.User
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.UserUpdate
	if err := h.body(c, &req); err != nil {
		return err
	}
	out, err := h.users.Update(c.UserContext(), u, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} dto.MessageResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.UserContext(), u, c.Params("id")); err != nil {
		return err
	}
	return message(c, "User deleted successfully")
}
