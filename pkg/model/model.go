package model

import (
	"fmt"
	"strings"
)

// Record is implemented by every persisted entity. Stores call Normalize
// then Validate before any write.
type Record interface {
	GetID() string
	Normalize()
	Validate() error
}

// ValidationError reports a field that failed schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if len(value) > limit {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", limit)}
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	}
}
