package controllers

import (
	"errors"

	"educa/backend/services"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps the service error taxonomy onto HTTP statuses, keeping
// the mapping in one place instead of in every handler.
func serviceError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.Error(c, fiber.StatusUnprocessableEntity, verr, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return utils.Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, services.ErrDuplicateEmail):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, services.ErrUnauthorized):
		return utils.Error(c, fiber.StatusUnauthorized, err)
	case errors.Is(err, services.ErrForbidden):
		return utils.Error(c, fiber.StatusForbidden, err)
	case errors.Is(err, services.ErrIncomplete):
		return utils.Error(c, fiber.StatusConflict, err)
	default:
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
}
