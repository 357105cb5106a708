package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Column limits shared by validation and schema.
const (
	MaxTitleLength        = 200
	MaxCategoryNameLength = 25
	MaxInterestNameLength = 50
	MaxPersonNameLength   = 25
	MaxUserNameLength     = 25
	MaxEmailLength        = 50
	MaxCommentLength      = 1000
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors collects several field errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateLength checks the rune count of value against [min, max].
func ValidateLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return ValidationError{Field: field, Message: fmt.Sprintf("length must be between %d and %d characters", min, max)}
	}
	return nil
}

func ValidateEmail(field, value string) error {
	if !emailRegex.MatchString(value) {
		return ValidationError{Field: field, Message: "must be a valid email address"}
	}
	return nil
}
