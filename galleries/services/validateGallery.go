package services

import (
	"fmt"
	"strings"

	"photo-portfolio-backend/db/models"
)

// ValidateGallery validates a single gallery instance
func ValidateGallery(gallery *models.Gallery) string {
	var validationErrors []string

	if gallery.Slug == "" {
		validationErrors = append(validationErrors, "Slug")
	}
	if gallery.Title.IsZero() {
		validationErrors = append(validationErrors, "Title")
	}
	if gallery.CreatedBy == "" {
		validationErrors = append(validationErrors, "Created By")
	}

	if len(validationErrors) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(validationErrors, ", "))
	}

	if gallery.Title.Localized != nil {
		if strings.TrimSpace(gallery.Title.Localized[models.LocaleEnglish]) == "" {
			return "Localized titles must include an English value"
		}
	}

	return ""
}
