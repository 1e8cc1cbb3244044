package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

func notFound(what string) error {
	return fiber.NewError(fiber.StatusNotFound, what+" not found")
}

func forbidden(msg string) error {
	return fiber.NewError(fiber.StatusForbidden, msg)
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

// lookup turns a missing document into a 404 for what.
func lookup(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(what)
	}
	return err
}

func requireRole(u models.User, msg string, roles ...string) error {
	if !u.HasRole(roles...) {
		return forbidden(msg)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, store.ErrDuplicate)
}

func notFoundMsg(msg string) error {
	return fiber.NewError(fiber.StatusNotFound, msg)
}
