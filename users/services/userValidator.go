package services

import (
	"fmt"
	"net/mail"
	"strings"

	"photo-portfolio-backend/db/models"
)

// ValidateUser validates a single user instance prior to creation
func ValidateUser(user *models.User) string {
	var validationErrors []string

	if user.FirstName == "" {
		validationErrors = append(validationErrors, "First Name")
	}
	if user.LastName == "" {
		validationErrors = append(validationErrors, "Last Name")
	}
	if user.Email == "" {
		validationErrors = append(validationErrors, "Email")
	}
	if user.Password == "" {
		validationErrors = append(validationErrors, "Password")
	}

	if len(validationErrors) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(validationErrors, ", "))
	}

	if _, err := mail.ParseAddress(user.Email); err != nil {
		return "Invalid email address"
	}

	if len(user.Password) < 8 {
		return "Password must be at least 8 characters"
	}

	switch user.Role {
	case models.AdminRole, models.EditorRole:
	default:
		return fmt.Sprintf("Invalid role '%s'", user.Role)
	}

	return ""
}
