package controllers

import (
	"context"
	"os"
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/token"
	"photo-portfolio-backend/users/repositories"
	"photo-portfolio-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type LoginController struct {
	UserRepo    repositories.UserRepository
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}

// LoginUser verifies the password. Accounts with TOTP enabled get a
// pre-token and must complete the code step; the rest get cookies directly.
func (lc *LoginController) LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	user, err := lc.UserRepo.GetUserByEmail(req.Email)
	if err != nil || !services.CheckPasswordHash(req.Password, user.Password) {
		if err != nil {
			config.Logger.Warn("Login attempt: User not found or database error",
				zap.String("email", req.Email),
				zap.Error(err),
			)
		} else {
			config.Logger.Warn("Login attempt: Invalid password",
				zap.String("email", req.Email),
			)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid email or password.",
		})
	}

	if !user.Active {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Account disabled",
			"data":    nil,
			"error":   "This account has been deactivated.",
		})
	}

	if user.TOTPEnabled {
		otpService := services.NewOtpService(lc.RedisClient, lc.Ctx)
		preToken, err := otpService.GeneratePreToken(user.ID.String())
		if err != nil {
			config.Logger.Error("Failed to generate pre-token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"data":    nil,
				"error":   "An internal server error occurred.",
			})
		}

		return c.JSON(fiber.Map{
			"message": "TOTP verification required",
			"data": fiber.Map{
				"requires_totp": true,
				"user_id":       user.ID.String(),
				"pre_token":     preToken,
			},
			"error": nil,
		})
	}

	return lc.issueSession(c, user)
}

// issueSession creates access/refresh tokens, stores the refresh token in
// Redis and sets the HTTPOnly cookies.
func (lc *LoginController) issueSession(c *fiber.Ctx, user *models.User) error {
	accessToken, err := lc.PasetoMaker.CreateToken(user.Email, 15*time.Minute)
	if err != nil {
		config.Logger.Error("Error generating access token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"data":    nil,
			"error":   "An internal server error occurred during token generation.",
		})
	}

	refreshToken, err := lc.PasetoMaker.CreateToken(user.Email, 7*24*time.Hour)
	if err != nil {
		config.Logger.Error("Error generating refresh token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"data":    nil,
			"error":   "An internal server error occurred during token generation.",
		})
	}

	err = lc.RedisClient.Set(lc.Ctx, "refresh_token:"+refreshToken, user.ID.String(), 7*24*time.Hour).Err()
	if err != nil {
		config.Logger.Error("Error storing refresh token in Redis",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"data":    nil,
			"error":   "An internal server error occurred during session management.",
		})
	}

	if err := lc.UserRepo.MarkLogin(user.ID.String()); err != nil {
		config.Logger.Warn("Failed to record login timestamp", zap.Error(err))
	}

	cookieDomain := os.Getenv("COOKIE_DOMAIN")
	if cookieDomain == "" {
		cookieDomain = "localhost"
	}
	secure := os.Getenv("APP_ENV") == "production"

	accessCookie := fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(15 * time.Minute),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "None",
		Path:     "/",
		Domain:   cookieDomain,
	}

	refreshCookie := fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "None",
		Path:     "/",
		Domain:   cookieDomain,
	}

	c.Cookie(&accessCookie)
	c.Cookie(&refreshCookie)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"user": user,
		},
		"error": nil,
	})
}
