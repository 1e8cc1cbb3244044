package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mddrc-backend/internal/authctx"
	"mddrc-backend/internal/models"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/validation"
)

// binder parses and validates request bodies and query strings.
type binder struct {
	v *validation.Validator
}

func (b binder) body(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	return b.v.Struct(dst)
}

func (b binder) query(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	return nil
}

func actor(c *fiber.Ctx) (models.User, error) {
	return authctx.User(c)
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"message": msg})
}

// formFile wraps the multipart field as an upload saved through fiber.
func formFile(c *fiber.Ctx, field string) (services.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return services.Upload{}, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	return services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Save:        func(path string) error { return c.SaveFile(fh, path) },
	}, nil
}
