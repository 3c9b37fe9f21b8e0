package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project-user-api/services"
	"project-user-api/utils"
)

type BatchUsersRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,uuid"`
}

// UserController exposes account endpoints.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetMe handles GET /users/me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	user, err := uc.users.GetActiveUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteMe handles DELETE /users/me
func (uc *UserController) DeleteMe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := uc.users.SoftDeleteUser(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deactivated"})
}

// ReactivateUser handles POST /users/:userId/reactivate
func (uc *UserController) ReactivateUser(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := uc.users.ReactivateUser(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account reactivated"})
}

// ListUsers handles GET /users
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.users.GetAllActiveUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// SearchUsers handles GET /users/search?q=
func (uc *UserController) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "q is required"})
	}

	users, err := uc.users.SearchUsers(c.Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// BatchGetUsers handles POST /users/batch
func (uc *UserController) BatchGetUsers(c *fiber.Ctx) error {
	var req BatchUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID: " + raw})
		}
		ids = append(ids, id)
	}

	users, err := uc.users.GetUsersByIDs(c.Context(), ids)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
