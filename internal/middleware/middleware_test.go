package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mddrc-backend/internal/authctx"
	"mddrc-backend/internal/models"
)

type fakeAuth map[string]models.User

func (f fakeAuth) Authenticate(_ context.Context, uid string) (models.User, error) {
	u, ok := f[uid]
	if !ok {
		return u, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	return u, nil
}

func newApp() *fiber.App {
	app := fiber.New()
	users := fakeAuth{"u1": {ID: "u1", Role: models.RoleAdmin, IsActive: true}}
	app.Use(JWTAuth("secret"), LoadUser(users))
	app.Get("/me", func(c *fiber.Ctx) error {
		u, err := authctx.User(c)
		if err != nil {
			return err
		}
		return c.SendString(u.Role)
	})
	return app
}

func TestJWTAuth(t *testing.T) {
	access, err := authctx.Sign("secret", "u1", authctx.PurposeAccess, time.Hour, time.Now())
	require.NoError(t, err)
	reset, err := authctx.Sign("secret", "u1", authctx.PurposeReset, time.Hour, time.Now())
	require.NoError(t, err)
	ghost, err := authctx.Sign("secret", "u2", authctx.PurposeAccess, time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc", fiber.StatusUnauthorized},
		{"reset token", "Bearer " + reset, fiber.StatusUnauthorized},
		{"unknown user", "Bearer " + ghost, fiber.StatusUnauthorized},
		{"valid", "Bearer " + access, fiber.StatusOK},
	}
	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
