package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ValidateTOTP completes the second step of the login flow: consume the
// pre-token, check the authenticator code, issue the session cookies.
func (lc *LoginController) ValidateTOTP(c *fiber.Ctx) error {
	type ValidateTOTPRequest struct {
		UserID   string `json:"user_id"`
		TOTPCode string `json:"totp_code"`
		PreToken string `json:"pre_token"`
	}

	var req ValidateTOTPRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing TOTP validation request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	otpService := services.NewOtpService(lc.RedisClient, lc.Ctx)

	if !otpService.ValidatePreToken(req.PreToken, req.UserID) {
		config.Logger.Warn("Invalid pre-token provided",
			zap.String("user_id", req.UserID),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid session.",
		})
	}

	user, err := lc.UserRepo.GetUserByID(req.UserID)
	if err != nil {
		config.Logger.Error("Error fetching user by ID during TOTP validation",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid user or session.",
		})
	}

	if !otpService.ValidateTOTPCode(user.TOTPSecret, req.TOTPCode) {
		config.Logger.Warn("Invalid TOTP code provided",
			zap.String("user_id", req.UserID),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid authenticator code.",
		})
	}

	return lc.issueSession(c, user)
}
