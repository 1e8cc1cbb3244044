package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

type AuthHandler struct {
	binder
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService, v *validation.Validator) *AuthHandler {
	return &AuthHandler{binder: binder{v}, auth: auth}
}

// Login godoc
// @Summary      Log in
// @Description  Accepts an email address or IC number in the email field
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.TokenResponse
// @Failure      401 {object} map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	res, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Register godoc
// @Summary      Register a user
// @Description  Admins create any role; coordinators and assistant admins create participants
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegisterRequest true "User"
// @Success      201 {object} models.User
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.RegisterRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	created, err := h.auth.Register(c.UserContext(), u, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ChangePasswordRequest true "Passwords"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} map[string]string
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	u, err := actor(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.UserContext(), u, req); err != nil {
		return err
	}
	return message(c, "Password changed successfully")
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ForgotPasswordRequest true "Email"
// @Success      200 {object} dto.MessageResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	msg, err := h.auth.ForgotPassword(c.UserContext(), req)
	if err != nil {
		return err
	}
	return message(c, msg)
}

// ResetPassword godoc
// @Summary      Reset a password with a mailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ResetPasswordRequest true "Token and new password"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} map[string]string
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := h.body(c, &req); err != nil {
		return err
	}
	if err := h.auth.ResetPassword(c.UserContext(), req); err != nil {
		return err
	}
	return message(c, "Password reset successfully")
}
