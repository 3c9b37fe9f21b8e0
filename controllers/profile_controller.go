package controller

import (
	"github.com/gofiber/fiber/v2"

	"project-user-api/services"
	"project-user-api/utils"
)

type UpdateProfileRequest struct {
	Name            string  `json:"name" validate:"omitempty,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url"`
}

type SaveImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// ProfileController exposes profile and avatar endpoints.
type ProfileController struct {
	users  *services.UserService
	images *services.ImageService
}

func NewProfileController(users *services.UserService, images *services.ImageService) *ProfileController {
	return &ProfileController{users: users, images: images}
}

// GetProfile handles GET /profiles/me
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	view, err := pc.users.GetProfile(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// UpdateProfile handles PUT /profiles/me
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := pc.users.UpdateProfile(c.Context(), userID, services.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetProfileImage handles GET /profiles/me/image
func (pc *ProfileController) GetProfileImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	url, err := pc.images.GetImageURL(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"image_url": url})
}

// SaveProfileImage handles PUT /profiles/me/image
func (pc *ProfileController) SaveProfileImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req SaveImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	url, err := pc.images.SaveImageURL(c.Context(), userID, req.ImageURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"image_url": url})
}

// DeleteProfileImage handles DELETE /profiles/me/image
func (pc *ProfileController) DeleteProfileImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := pc.images.DeleteImageURL(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile image removed"})
}
