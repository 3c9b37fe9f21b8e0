package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project-user-api/tempstore"
	"project-user-api/utils"
)

type TempSignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type TempLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TempAuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
}

// TempAuthController issues tokens for throwaway accounts so the API can be
// exercised without the external auth provider. Accounts live in the injected
// store, not in the database.
type TempAuthController struct {
	store tempstore.Store
}

func NewTempAuthController(store tempstore.Store) *TempAuthController {
	return &TempAuthController{store: store}
}

// Signup handles POST /temp/signup
func (tc *TempAuthController) Signup(c *fiber.Ctx) error {
	var req TempSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &tempstore.TempUser{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := tc.store.Put(c.Context(), user); err != nil {
		if errors.Is(err, tempstore.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
		}
		utils.LogError("temp_signup", err, map[string]interface{}{"email": req.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create temp user"})
	}

	accessToken, refreshToken, err := utils.GenerateJWTToken(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate tokens"})
	}

	return c.Status(fiber.StatusCreated).JSON(TempAuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	})
}

// Login handles POST /temp/login
func (tc *TempAuthController) Login(c *fiber.Ctx) error {
	var req TempLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := tc.store.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, tempstore.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		utils.LogError("temp_login", err, map[string]interface{}{"email": req.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up temp user"})
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	accessToken, refreshToken, err := utils.GenerateJWTToken(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate tokens"})
	}

	return c.JSON(TempAuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	})
}
