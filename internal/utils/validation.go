package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
	validTripIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateTripID validates that a trip identifier is safe and within
// reasonable limits.
func ValidateTripID(id string) error {
	if id == "" {
		return errors.New("trip id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("trip id too long (max 100 characters)")
	}

	if !validTripIDPattern.MatchString(id) {
		return errors.New("trip id contains invalid characters")
	}

	return nil
}

// ValidateStopName validates a stop name. Stop names commonly carry spaces
// and punctuation, so only length and injection patterns are checked.
func ValidateStopName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("stop name cannot be empty")
	}

	if len(name) > 200 {
		return errors.New("stop name too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("stop name contains invalid characters")
	}

	return nil
}
