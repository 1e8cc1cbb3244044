package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"mddrc-backend/internal/logsvc"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/validation"
)

// ErrorHandler renders every error as {"error": msg}, plus "fields" for
// validation failures.
func ErrorHandler(log logsvc.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ve *validation.Error
		var fe *fiber.Error
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error(), "fields": ve.Fields})
		case errors.As(err, &fe):
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		case errors.Is(err, store.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Record already exists"})
		}

		log.Error("request failed", err, map[string]any{"method": c.Method(), "path": c.Path()})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
