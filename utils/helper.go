package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// StringToUUIDPtr converts a string to UUID pointer
func StringToUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &u
}

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify produces a URL-safe slug from a display title
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
