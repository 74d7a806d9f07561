package domain

import "fmt"

// NotFoundError reports an unknown medication or template identifier.
// Silently skipping a prescribed medication is a patient-safety risk, so
// lookups surface this instead of defaulting.
type NotFoundError struct {
	Kind string // "medication" or "template"
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Unwrap allows errors.Is(err, ErrNotFound) checks.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewMedicationNotFound creates a NotFoundError for a medication identifier.
func NewMedicationNotFound(id MedicationID) *NotFoundError {
	return &NotFoundError{Kind: "medication", ID: string(id)}
}

// NewTemplateNotFound creates a NotFoundError for a template identifier.
func NewTemplateNotFound(id TemplateID) *NotFoundError {
	return &NotFoundError{Kind: "template", ID: string(id)}
}

// ReferenceDataError reports an internal inconsistency in the reference
// data, caught at load time rather than at calculation time.
type ReferenceDataError struct {
	Entity string
	ID     string
	Reason string
}

// Error implements the error interface.
func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data error: %s %q: %s", e.Entity, e.ID, e.Reason)
}

// ValidationError represents input validation errors.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}
