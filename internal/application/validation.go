package application

import (
	"fmt"
	"strings"

	"enrichio/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError wrapping ErrEmptyInput if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "rawName" -> "company name")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
			Err:     ErrEmptyInput,
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to readable words
// for error messages (e.g., "rawName" -> "company name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"rawName":  "company name",
		"sector":   "sector",
		"label":    "sector label",
		"filename": "file name",
		"lines":    "company list",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateSector checks that a sector label is set and is not one of the
// placeholder labels given to unmatched or failed rows.
func ValidateSector(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if domain.IsSentinel(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%q is a placeholder, pick a real sector", strings.TrimSpace(value)),
			Err:     ErrReservedSector,
		}
	}
	return nil
}

// ValidateIndex checks that index addresses an existing row
func ValidateIndex(index, length int) error {
	if index < 0 || index >= length {
		return &ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("row %d does not exist (table has %d rows)", index, length),
			Err:     ErrIndexOutOfRange,
		}
	}
	return nil
}
