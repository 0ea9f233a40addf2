package plkit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrStructural indicates a required input column is missing.
var ErrStructural = errors.New("structural error")

// ErrNotFound indicates a requested person or price does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates a field value that cannot be interpreted.
var ErrValidation = errors.New("validation error")

// ErrReconciliation indicates a report total disagrees with the raw orders.
var ErrReconciliation = errors.New("reconciliation mismatch")

// StructuralError represents a missing required column.
type StructuralError struct {
	Column string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// NotFoundError represents a lookup that matched nothing.
type NotFoundError struct {
	Kind string // "name", "email", "price"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError represents a malformed field value.
type ValidationError struct {
	Field  string
	Row    int // sheet row, 0 when unknown
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("invalid %s in row %d: %s", e.Field, e.Row, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ReconciliationMismatch represents a failed report cross-check.
type ReconciliationMismatch struct {
	Check     string // "order count", "back personalisations", "sleeve personalisations"
	Initial   int
	Processed int
}

func (e *ReconciliationMismatch) Error() string {
	return fmt.Sprintf("%s mismatch: %d in orders, %d in report", e.Check, e.Initial, e.Processed)
}

func (e *ReconciliationMismatch) Unwrap() error {
	return ErrReconciliation
}

// NewStructuralError creates a new StructuralError.
func NewStructuralError(column string) *StructuralError {
	return &StructuralError{Column: column}
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, row int, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Row:    row,
		Reason: reason,
	}
}
