package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels users see.
var FieldLabels = map[string]string{
	"CompanyName":     "Company name",
	"JobTitle":        "Job title",
	"ApplicationDate": "Application date",
	"JobStatus":       "Status",
	"JobLocation":     "Location",
	"AppDeadline":     "Application deadline",
	"JobNotes":        "Notes",
	"Username":        "Username",
	"Password":        "Password",
}

// FormatValidationErrors converts validator.ValidationErrors to
// user-friendly messages.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words.
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
