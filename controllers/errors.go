package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"project-user-api/models"
	"project-user-api/services"
)

// respondError maps a service error kind to an HTTP status. Unknown errors
// become 500 so state errors never masquerade as server faults.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrWorkspaceNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrNotAMember),
		errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrRequestAlreadyPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrMemberWorkspaceMismatch),
		errors.Is(err, services.ErrRequestWorkspaceMismatch),
		errors.Is(err, services.ErrCannotRemoveOwner),
		errors.Is(err, services.ErrCannotRemoveSelf),
		errors.Is(err, services.ErrCannotDemoteOwner),
		errors.Is(err, models.ErrInvalidRole),
		errors.Is(err, models.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
