package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Country slugs and indicator names: lowercase alphanumerics and hyphens
	validIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateQuery validates search query strings
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// ValidateYear validates a dataset year. The WHO dataset covers 2000-2015 but
// the bounds here are deliberately loose so newer snapshots keep working.
func ValidateYear(year int) error {
	if year < 1900 || year > 2100 {
		return errors.New("year out of range")
	}
	return nil
}

// ValidateThreshold validates a cosine similarity threshold.
func ValidateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	return nil
}

// ValidateLimit validates a result count limit.
func ValidateLimit(limit int) error {
	if limit < 1 {
		return errors.New("limit must be positive")
	}
	if limit > 500 {
		return errors.New("limit too large (max 500)")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	sanitized = strings.TrimSpace(sanitized)
	return sanitized
}
