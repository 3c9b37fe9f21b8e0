package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"project-user-api/config"
	"project-user-api/models"
	"project-user-api/utils"
)

// Protected validates the caller's JWT, loads the account and stores it in
// request locals. Tokens are accepted from the Authorization header or the
// access_token cookie.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid authorization format",
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access_token")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authorization required",
				})
			}
		}

		claims, err := utils.ParseJWTToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Temp-auth tokens carry IDs that have no account row yet; the
		// services decide per operation whether the user must exist.
		var user models.User
		if err := config.DB.Where("user_id = ?", claims.UserID).First(&user).Error; err == nil {
			if !user.IsActive {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Account is not active",
				})
			}
			c.Locals("user", &user)
		}

		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
