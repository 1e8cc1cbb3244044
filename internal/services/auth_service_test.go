package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/dto"
	"mddrc-backend/internal/authctx"
	"mddrc-backend/internal/models"
)

func TestRegisterRoleRules(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, models.RoleAdmin, "Admin", "A1")
	coord := f.user(t, models.RoleCoordinator, "Coord", "C1")
	trainer := f.user(t, models.RoleTrainer, "Trainer", "T1")

	_, err := f.svc.Auth.Register(f.ctx, coord, dto.RegisterRequest{FullName: "X", IDNumber: "X1", Role: models.RoleTrainer, Password: "pw1234"})
	requireStatus(t, err, fiber.StatusForbidden)

	_, err = f.svc.Auth.Register(f.ctx, trainer, dto.RegisterRequest{FullName: "X", IDNumber: "X1", Role: models.RoleParticipant})
	requireStatus(t, err, fiber.StatusForbidden)

	p, err := f.svc.Auth.Register(f.ctx, coord, dto.RegisterRequest{FullName: "Ali", IDNumber: "900101-01-1234", Role: models.RoleParticipant})
	require.NoError(t, err)
	assert.Equal(t, "900101011234@temp.mddrc.local", p.Email)
	assert.True(t, CheckPassword(p.PasswordHash, "mddrc1"))

	_, err = f.svc.Auth.Register(f.ctx, admin, dto.RegisterRequest{FullName: "Dup", IDNumber: "900101-01-1234", Role: models.RoleParticipant})
	requireStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.Auth.Register(f.ctx, admin, dto.RegisterRequest{FullName: "T2", IDNumber: "T2", Role: models.RoleTrainer, Email: "t2@mddrc.test"})
	requireStatus(t, err, fiber.StatusBadRequest)
}

func TestLoginByEmailOrIC(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, models.RoleParticipant, "Siti", "880202-02-2222")

	res, err := f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: "880202-02-2222", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, u.ID, res.User.ID)

	uid, err := authctx.Parse(testSecret, res.AccessToken, authctx.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	_, err = f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: strings.ToUpper(u.Email), Password: "secret1"})
	require.NoError(t, err)

	_, err = f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: u.Email, Password: "wrong"})
	requireStatus(t, err, fiber.StatusUnauthorized)

	u.IsActive = false
	require.NoError(t, f.st.Users.Save(f.ctx, u))
	_, err = f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: u.Email, Password: "secret1"})
	requireStatus(t, err, fiber.StatusUnauthorized)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, models.RoleTrainer, "Tan", "T9")

	err := f.svc.Auth.ChangePassword(f.ctx, u, dto.ChangePasswordRequest{OldPassword: "nope", NewPassword: "newpass"})
	requireStatus(t, err, fiber.StatusBadRequest)

	require.NoError(t, f.svc.Auth.ChangePassword(f.ctx, u, dto.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "newpass"}))
	_, err = f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: u.Email, Password: "newpass"})
	require.NoError(t, err)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, models.RoleCoordinator, "Lim", "C7")

	msg, err := f.svc.Auth.ForgotPassword(f.ctx, dto.ForgotPasswordRequest{Email: "nobody@mddrc.test"})
	require.NoError(t, err)
	assert.Equal(t, forgotPasswordMessage, msg)
	assert.Empty(t, f.mail.Sent())

	_, err = f.svc.Auth.ForgotPassword(f.ctx, dto.ForgotPasswordRequest{Email: u.Email})
	require.NoError(t, err)
	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, u.Email, sent[0].To[0].Address)

	i := strings.Index(sent[0].Text, "http://frontend.test/reset-password?token=")
	require.GreaterOrEqual(t, i, 0)
	link := strings.Fields(sent[0].Text[i:])[0]
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := parsed.Query().Get("token")

	err = f.svc.Auth.ResetPassword(f.ctx, dto.ResetPasswordRequest{Token: "garbage", NewPassword: "fresh1"})
	requireStatus(t, err, fiber.StatusBadRequest)

	access, err := f.svc.Auth.IssueToken(u)
	require.NoError(t, err)
	err = f.svc.Auth.ResetPassword(f.ctx, dto.ResetPasswordRequest{Token: access, NewPassword: "fresh1"})
	requireStatus(t, err, fiber.StatusBadRequest)

	require.NoError(t, f.svc.Auth.ResetPassword(f.ctx, dto.ResetPasswordRequest{Token: token, NewPassword: "fresh1"}))
	_, err = f.svc.Auth.Login(f.ctx, dto.LoginRequest{Email: u.Email, Password: "fresh1"})
	require.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, models.RoleAdmin, "Root", "R1")

	got, err := f.svc.Auth.Authenticate(f.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = f.svc.Auth.Authenticate(f.ctx, "missing")
	requireStatus(t, err, fiber.StatusUnauthorized)
}
