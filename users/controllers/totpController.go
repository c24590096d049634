package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetupTOTP generates a secret for the logged-in user. The secret is stored
// disabled until the user proves they can produce a valid code.
func (lc *LoginController) SetupTOTP(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.ContextKeyUserEmail).(string)

	user, err := lc.UserRepo.GetUserByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"data":    nil,
			"error":   "User does not exist.",
		})
	}

	if user.TOTPEnabled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "TOTP already enabled",
			"data":    nil,
			"error":   "TOTP is already set up for this user.",
		})
	}

	otpService := services.NewOtpService(lc.RedisClient, lc.Ctx)
	setup, err := otpService.GenerateTOTPSecret(user.Email)
	if err != nil {
		config.Logger.Error("Failed to generate TOTP secret", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Setup failed",
			"data":    nil,
			"error":   "Failed to generate TOTP secret.",
		})
	}

	if err := lc.UserRepo.SetTOTP(user.ID.String(), setup.Secret, false); err != nil {
		config.Logger.Error("Failed to store TOTP secret", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Setup failed",
			"data":    nil,
			"error":   "Failed to store TOTP secret.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "TOTP setup initiated",
		"data": fiber.Map{
			"qr_code_url":  setup.QRCodeURL,
			"manual_key":   setup.ManualKey,
			"instructions": "Scan the QR code with your authenticator app or manually enter the key. Then verify with a code to complete setup.",
		},
		"error": nil,
	})
}

// EnableTOTP turns the second factor on after the user verifies a code
func (lc *LoginController) EnableTOTP(c *fiber.Ctx) error {
	type EnableRequest struct {
		TOTPCode string `json:"totp_code"`
	}

	var req EnableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	email, _ := c.Locals(middleware.ContextKeyUserEmail).(string)
	user, err := lc.UserRepo.GetUserByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"data":    nil,
			"error":   "User does not exist.",
		})
	}

	otpService := services.NewOtpService(lc.RedisClient, lc.Ctx)
	if !otpService.ValidateTOTPCode(user.TOTPSecret, req.TOTPCode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Enable failed",
			"data":    nil,
			"error":   "Invalid code or setup not found.",
		})
	}

	if err := lc.UserRepo.SetTOTP(user.ID.String(), user.TOTPSecret, true); err != nil {
		config.Logger.Error("Failed to enable TOTP", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Enable failed",
			"data":    nil,
			"error":   "Failed to enable TOTP.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "TOTP enabled successfully",
		"data": fiber.Map{
			"enabled": true,
		},
		"error": nil,
	})
}

// DisableTOTP turns the second factor off; requires the account password
func (lc *LoginController) DisableTOTP(c *fiber.Ctx) error {
	type DisableRequest struct {
		Password string `json:"password"`
	}

	var req DisableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	email, _ := c.Locals(middleware.ContextKeyUserEmail).(string)
	user, err := lc.UserRepo.GetUserByEmail(email)
	if err != nil || !services.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid password.",
		})
	}

	if err := lc.UserRepo.SetTOTP(user.ID.String(), "", false); err != nil {
		config.Logger.Error("Failed to disable TOTP", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Disable failed",
			"data":    nil,
			"error":   "Failed to disable TOTP.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "TOTP disabled successfully",
		"data": fiber.Map{
			"enabled": false,
		},
		"error": nil,
	})
}
