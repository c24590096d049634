package middleware

import (
	"strings"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContextKeyUserEmail is where the verified account email lands in locals.
const ContextKeyUserEmail = "user_email"

// RequireAuth guards admin routes. The access token is read from the
// HTTPOnly cookie first, falling back to a Bearer header for API clients.
func RequireAuth(tokenMaker token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies("access_token")
		if tokenStr == "" {
			authHeader := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		payload, err := tokenMaker.VerifyToken(tokenStr)
		if err != nil {
			config.Logger.Warn("Rejected invalid access token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(ContextKeyUserEmail, payload.Email)
		return c.Next()
	}
}
