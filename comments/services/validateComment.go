package services

import (
	"fmt"
	"net/mail"
	"strings"

	"photo-portfolio-backend/db/models"

	"github.com/google/uuid"
)

const maxCommentLength = 4000

// ValidateComment validates a single comment instance
func ValidateComment(comment *models.Comment) string {
	var validationErrors []string

	if comment.AuthorName == "" {
		validationErrors = append(validationErrors, "Author Name")
	}
	if comment.AuthorEmail == "" {
		validationErrors = append(validationErrors, "Author Email")
	}
	if strings.TrimSpace(comment.Body) == "" {
		validationErrors = append(validationErrors, "Body")
	}
	if comment.TargetID == uuid.Nil {
		validationErrors = append(validationErrors, "Target ID")
	}

	if len(validationErrors) > 0 {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(validationErrors, ", "))
	}

	if !isValidTargetType(comment.TargetType) {
		return fmt.Sprintf("Invalid target type '%s'", comment.TargetType)
	}

	if _, err := mail.ParseAddress(comment.AuthorEmail); err != nil {
		return "Invalid author email address"
	}

	if len(comment.Body) > maxCommentLength {
		return fmt.Sprintf("Comment body exceeds %d characters", maxCommentLength)
	}

	return ""
}

func isValidTargetType(targetType models.CommentTarget) bool {
	switch targetType {
	case models.TargetGallery, models.TargetImage, models.TargetBlogPost:
		return true
	}
	return false
}

// IsValidModerationStatus reports whether a moderation request carries an
// actionable status. Pending is not a valid moderation outcome.
func IsValidModerationStatus(status models.CommentStatus) bool {
	return status == models.CommentApproved || status == models.CommentRejected
}
