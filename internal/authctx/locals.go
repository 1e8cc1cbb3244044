package authctx

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/models"
)

const (
	userIDKey = "user_id"
	userKey   = "user"
)

func SetUserID(c *fiber.Ctx, uid string) { c.Locals(userIDKey, uid) }

func UserID(c *fiber.Ctx) string {
	uid, _ := c.Locals(userIDKey).(string)
	return uid
}

func SetUser(c *fiber.Ctx, u models.User) { c.Locals(userKey, u) }

// User returns the authenticated user loaded by middleware.LoadUser.
func User(c *fiber.Ctx) (models.User, error) {
	u, ok := c.Locals(userKey).(models.User)
	if !ok {
		return models.User{}, fiber.ErrUnauthorized
	}
	return u, nil
}
