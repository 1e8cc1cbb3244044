package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/dto"
	"mddrc-backend/internal/authctx"
	"mddrc-backend/internal/mailsvc"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

const forgotPasswordMessage = "If the email exists, a reset link will be sent"

type AuthService struct {
	st     *store.Stores
	people *PeopleService
	opts   Options
}

func NewAuthService(st *store.Stores, people *PeopleService, opts Options) *AuthService {
	return &AuthService{st: st, people: people, opts: opts}
}

func (s *AuthService) IssueToken(u models.User) (string, error) {
	return authctx.Sign(s.opts.JWTSecret, u.ID, authctx.PurposeAccess, s.opts.JWTTTL, s.opts.Clock.Now())
}

// Authenticate resolves a bearer token subject to an active user.
func (s *AuthService) Authenticate(ctx context.Context, uid string) (models.User, error) {
	u, err := s.st.Users.Get(ctx, uid)
	if err != nil {
		if isNotFound(err) {
			return u, fiber.NewError(fiber.StatusUnauthorized, "User not found")
		}
		return u, err
	}
	if !u.IsActive {
		return u, fiber.NewError(fiber.StatusUnauthorized, "User is inactive")
	}
	return u, nil
}

// Login accepts an email or an IC number as the login name.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	login := strings.TrimSpace(req.Email)
	ors := []store.Cond{store.EqCond("id_number", login)}
	if strings.Contains(login, "@") {
		ors = append(ors, store.EqCond("email", strings.ToLower(login)))
	}

	invalid := fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	u, err := s.st.Users.FindOne(ctx, store.Q().Or(ors...))
	if err != nil {
		if isNotFound(err) {
			return dto.TokenResponse{}, invalid
		}
		return dto.TokenResponse{}, err
	}
	if !u.IsActive || !CheckPassword(u.PasswordHash, req.Password) {
		return dto.TokenResponse{}, invalid
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{AccessToken: token, TokenType: "bearer", User: u}, nil
}

// Register creates a user. Admins may create any role; coordinators and
// assistant admins only participants.
func (s *AuthService) Register(ctx context.Context, actor models.User, req dto.RegisterRequest) (models.User, error) {
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleCoordinator, models.RoleAssistantAdmin:
		if req.Role != models.RoleParticipant {
			return models.User{}, forbidden("You can only create participants")
		}
	default:
		return models.User{}, forbidden("Access denied")
	}

	pwd := req.Password
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == models.RoleParticipant {
		if pwd == "" {
			pwd = s.opts.DefaultParticipantPassword
		}
		if email == "" {
			email = s.people.TempEmail(req.IDNumber)
		}
	}
	if pwd == "" {
		return models.User{}, badRequest("password is required")
	}
	if email == "" {
		return models.User{}, badRequest("email is required")
	}

	if _, err := s.st.Users.FindOne(ctx, store.Q().Eq("id_number", req.IDNumber)); err == nil {
		return models.User{}, badRequest("User already exists with this IC number")
	} else if !isNotFound(err) {
		return models.User{}, err
	}
	if _, err := s.st.Users.FindOne(ctx, store.Q().Eq("email", email)); err == nil {
		return models.User{}, badRequest("User already exists with this email")
	} else if !isNotFound(err) {
		return models.User{}, err
	}

	hash, err := s.people.HashPassword(pwd)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		ID:           models.NewID(),
		Email:        email,
		FullName:     req.FullName,
		IDNumber:     req.IDNumber,
		Role:         req.Role,
		CompanyID:    req.CompanyID,
		Location:     req.Location,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    s.opts.Clock.Now(),
	}
	if err := s.st.Users.Insert(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, actor models.User, req dto.ChangePasswordRequest) error {
	u, err := s.st.Users.Get(ctx, actor.ID)
	if err != nil {
		return lookup(err, "User")
	}
	if !CheckPassword(u.PasswordHash, req.OldPassword) {
		return badRequest("Incorrect old password")
	}
	if u.PasswordHash, err = s.people.HashPassword(req.NewPassword); err != nil {
		return err
	}
	return s.st.Users.Save(ctx, u)
}

// ForgotPassword mails a signed reset token. The reply never reveals
// whether the address is registered.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	u, err := s.st.Users.FindOne(ctx, store.Q().Eq("email", strings.ToLower(req.Email)))
	if err != nil {
		if isNotFound(err) {
			return forgotPasswordMessage, nil
		}
		return "", err
	}

	token, err := authctx.Sign(s.opts.JWTSecret, u.ID, authctx.PurposeReset, s.opts.ResetTokenTTL, s.opts.Clock.Now())
	if err != nil {
		return "", err
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.opts.FrontendURL, "/"), token)
	msg := mailsvc.Message{
		To:      []mail.Address{{Name: u.FullName, Address: u.Email}},
		Subject: "Password reset",
		Text:    fmt.Sprintf("Hello %s,\n\nUse the link below to reset your password:\n%s\n\nThe link expires in %s.\n", u.FullName, link, s.opts.ResetTokenTTL),
	}
	if err := s.opts.Mailer.Send(ctx, msg); err != nil {
		s.opts.Log.Error("sending reset email", err)
	}
	return forgotPasswordMessage, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	uid, err := authctx.Parse(s.opts.JWTSecret, req.Token, authctx.PurposeReset)
	if err != nil {
		return badRequest("Invalid or expired reset token")
	}
	u, err := s.st.Users.Get(ctx, uid)
	if err != nil {
		return lookup(err, "User")
	}
	if u.PasswordHash, err = s.people.HashPassword(req.NewPassword); err != nil {
		return err
	}
	return s.st.Users.Save(ctx, u)
}
