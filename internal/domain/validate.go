package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// requireID rejects the zero UUID. Used for foreign-key references that must
// point at an existing record.
func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// requireNotEmpty rejects empty and whitespace-only strings.
func requireNotEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// requirePositive rejects values <= 0.
func requirePositive(field string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be greater than 0, got %v", ErrValidation, field, value)
	}
	return nil
}

// requireNonNegative rejects values < 0.
func requireNonNegative(field string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrValidation, field, value)
	}
	return nil
}
