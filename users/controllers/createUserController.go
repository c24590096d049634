package controllers

import (
	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"
	"photo-portfolio-backend/middleware"
	"photo-portfolio-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (lc *LoginController) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   err.Error(),
		})
	}

	// Only admins may create accounts
	email, _ := c.Locals(middleware.ContextKeyUserEmail).(string)
	creator, err := lc.UserRepo.GetUserByEmail(email)
	if err != nil || creator.Role != models.AdminRole {
		return c.Status(403).JSON(fiber.Map{
			"message": "Forbidden",
			"error":   "Only administrators can create users.",
		})
	}

	if user.Role == "" {
		user.Role = models.EditorRole
	}
	user.CreatedBy = creator.Email

	if validationError := services.ValidateUser(&user); validationError != "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	if existing, _ := lc.UserRepo.GetUserByEmail(user.Email); existing != nil {
		return c.Status(409).JSON(fiber.Map{
			"message": "Duplicate email",
			"error":   "A user with this email already exists.",
		})
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		config.Logger.Error("Failed to hash password", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create user",
			"error":   "Internal error.",
		})
	}
	user.Password = hashed

	createdUser, err := lc.UserRepo.CreateUser(&user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to create user",
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "User created successfully",
		"data":    createdUser,
	})
}
