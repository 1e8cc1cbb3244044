package dto

import "mddrc-backend/internal/models"

// LoginRequest accepts either an email or an IC number in Email.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name" validate:"required"`
	IDNumber    string `json:"id_number" validate:"required"`
	Role        string `json:"role" validate:"required,role"`
	CompanyID   string `json:"company_id"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
