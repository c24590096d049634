package controllers

import (
	"os"
	"time"

	"photo-portfolio-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// LogoutUser clears the session cookies and revokes the refresh token
func (lc *LoginController) LogoutUser(c *fiber.Ctx) error {
	if refreshToken := c.Cookies("refresh_token"); refreshToken != "" {
		lc.RedisClient.Del(lc.Ctx, "refresh_token:"+refreshToken)
	}

	cookieDomain := os.Getenv("COOKIE_DOMAIN")
	if cookieDomain == "" {
		cookieDomain = "localhost"
	}

	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			Path:     "/",
			Domain:   cookieDomain,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
		"data":    nil,
		"error":   nil,
	})
}

// Me returns the authenticated user's profile
func (lc *LoginController) Me(c *fiber.Ctx) error {
	email, ok := c.Locals(middleware.ContextKeyUserEmail).(string)
	if !ok || email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
			"data":    nil,
			"error":   "No authenticated user.",
		})
	}

	user, err := lc.UserRepo.GetUserByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"data":    nil,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User retrieved successfully",
		"data":    user,
		"error":   nil,
	})
}
