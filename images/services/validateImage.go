package services

import (
	"fmt"
	"strings"

	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
)

// ValidateImage validates a single image instance
func ValidateImage(image *models.Image) string {
	var validationErrors []string

	if image.Slug == "" {
		validationErrors = append(validationErrors, "Slug")
	}
	if image.GalleryID == uuid.Nil {
		validationErrors = append(validationErrors, "Gallery ID")
	}
	if image.Title.IsZero() {
		validationErrors = append(validationErrors, "Title")
	}
	if image.OriginalURL == "" {
		validationErrors = append(validationErrors, "Original URL")
	}
	if image.CreatedBy == "" {
		validationErrors = append(validationErrors, "Created By")
	}

	if len(validationErrors) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(validationErrors, ", "))
	}

	if image.Status != "" && !isValidStatus(image.Status) {
		return fmt.Sprintf("Invalid status '%s'", image.Status)
	}

	if image.Title.Localized != nil {
		if strings.TrimSpace(image.Title.Localized[models.LocaleEnglish]) == "" {
			return "Localized titles must include an English value"
		}
	}

	return ""
}

func isValidStatus(status models.PublicationStatus) bool {
	switch status {
	case models.StatusDraft, models.StatusPublished, models.StatusArchived:
		return true
	}
	return false
}
