package application

import (
	"errors"
	"fmt"
	"strings"

	"cvbuilder/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for error messages
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"startDate":  "start date",
		"endDate":    "end date",
		"collection": "collection",
		"section":    "section",
		"path":       "file path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateCollection parses a collection name.
// Returns a ValidationError if the name is unknown.
func ValidateCollection(name string) (domain.Collection, error) {
	c, err := domain.ParseCollection(name)
	if err != nil {
		return "", &ValidationError{
			Field:   "collection",
			Message: fmt.Sprintf("unknown collection %q (want one of %s)", name, joinCollections()),
		}
	}
	return c, nil
}

// ValidateEntryField checks that field exists on entries of c
func ValidateEntryField(c domain.Collection, field string) error {
	for _, f := range domain.Fields(c) {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no field %q (want one of %s)",
		ErrInvalidField, c, field, strings.Join(domain.Fields(c), ", "))
}

// ValidatePersonalField checks that field is a personal info field
func ValidatePersonalField(field string) error {
	for _, f := range domain.PersonalFields {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("%w: personal info has no field %q (want one of %s)",
		ErrInvalidField, field, strings.Join(domain.PersonalFields, ", "))
}

// ValidateSectionKey parses a reorderable section name
func ValidateSectionKey(name string) (domain.SectionKey, error) {
	k, err := domain.ParseSectionKey(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSection, name)
	}
	return k, nil
}

// ValidateOrder checks a section order loaded from outside the editor
func ValidateOrder(order domain.SectionOrder) error {
	if err := order.Validate(); err != nil {
		return &ValidationError{
			Field:   "sectionsOrder",
			Message: err.Error(),
		}
	}
	return nil
}

func joinCollections() string {
	names := make([]string, len(domain.Collections))
	for i, c := range domain.Collections {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// IsValidationError reports whether err carries a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
