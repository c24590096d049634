package services

import (
	"fmt"
	"strings"

	"photo-portfolio-backend/db/models"
)

// ValidateBlogPost validates a single blog post instance
func ValidateBlogPost(post *models.BlogPost) string {
	var validationErrors []string

	if post.Slug == "" {
		validationErrors = append(validationErrors, "Slug")
	}
	if post.Title.IsZero() {
		validationErrors = append(validationErrors, "Title")
	}
	if post.Body.IsZero() {
		validationErrors = append(validationErrors, "Body")
	}
	if post.CreatedBy == "" {
		validationErrors = append(validationErrors, "Created By")
	}

	if len(validationErrors) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(validationErrors, ", "))
	}

	if post.Title.Localized != nil {
		if strings.TrimSpace(post.Title.Localized[models.LocaleEnglish]) == "" {
			return "Localized titles must include an English value"
		}
	}

	return ""
}

// EstimateReadingTime returns the reading time in minutes for the English
// body at roughly 200 words per minute, never less than one minute.
func EstimateReadingTime(body models.LocalizedText) int {
	words := len(strings.Fields(body.Resolve(models.LocaleEnglish)))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
