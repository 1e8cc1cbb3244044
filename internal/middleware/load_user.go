package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/authctx"
	"mddrc-backend/internal/models"
)

// Authenticator resolves a token subject to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, uid string) (models.User, error)
}

// LoadUser runs after JWTAuth and puts the caller's user record in Locals.
func LoadUser(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := authctx.UserID(c)
		if uid == "" {
			return fiber.ErrUnauthorized
		}
		u, err := auth.Authenticate(c.UserContext(), uid)
		if err != nil {
			return err
		}
		authctx.SetUser(c, u)
		return c.Next()
	}
}
