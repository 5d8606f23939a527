package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pawpal/pawpal/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("task_category", validateTaskCategory); err != nil {
		panic(fmt.Sprintf("failed to register task_category validator: %v", err))
	}
	if err := Validate.RegisterValidation("time_of_day", validateTimeOfDay); err != nil {
		panic(fmt.Sprintf("failed to register time_of_day validator: %v", err))
	}
	if err := Validate.RegisterValidation("task_frequency", validateTaskFrequency); err != nil {
		panic(fmt.Sprintf("failed to register task_frequency validator: %v", err))
	}
}

// validateTaskCategory validates that a string is a valid TaskCategory enum value
func validateTaskCategory(fl validator.FieldLevel) bool {
	return models.TaskCategory(fl.Field().String()).Valid()
}

// validateTimeOfDay validates that a string is a valid TimeOfDay enum value
func validateTimeOfDay(fl validator.FieldLevel) bool {
	return models.TimeOfDay(fl.Field().String()).Valid()
}

// validateTaskFrequency validates that a string is a valid TaskFrequency enum value
func validateTaskFrequency(fl validator.FieldLevel) bool {
	return models.TaskFrequency(fl.Field().String()).Valid()
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateTaskCategory validates a TaskCategory string value
func ValidateTaskCategory(value string) error {
	if !models.TaskCategory(value).Valid() {
		return fmt.Errorf("invalid category: %s (must be 'walk', 'feeding', 'medication', 'grooming', 'enrichment', 'cleaning', or 'other')", value)
	}
	return nil
}

// ValidateTimeOfDay validates a TimeOfDay string value
func ValidateTimeOfDay(value string) error {
	if !models.TimeOfDay(value).Valid() {
		return fmt.Errorf("invalid preferred_time: %s (must be 'morning', 'afternoon', 'evening', or 'unscheduled')", value)
	}
	return nil
}

// ValidateTaskFrequency validates a TaskFrequency string value
func ValidateTaskFrequency(value string) error {
	if !models.TaskFrequency(value).Valid() {
		return fmt.Errorf("invalid frequency: %s (must be 'once', 'daily', 'weekly', or 'monthly')", value)
	}
	return nil
}

// ValidateStatusFilter validates a completion status filter value
func ValidateStatusFilter(value string) error {
	switch value {
	case "incomplete", "completed", "all":
		return nil
	default:
		return fmt.Errorf("invalid status: %s (must be 'incomplete', 'completed', or 'all')", value)
	}
}
