package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/authctx"
)

// JWTAuth requires a bearer access token and stores its uid in Locals.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		uid, err := authctx.Parse(secret, tokenStr, authctx.PurposeAccess)
		if err != nil {
			return err
		}

		authctx.SetUserID(c, uid)
		return c.Next()
	}
}
