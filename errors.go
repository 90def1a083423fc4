package ctmigrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrAborted is returned when the operator declines to overwrite the
	// content type definition. Nothing has been written.
	ErrAborted = errors.New("aborted by operator")

	// ErrUnsupportedField marks source fields that cannot be migrated into
	// a container, such as sections.
	ErrUnsupportedField = errors.New("unsupported field type")
)

// ValidationError is a rejected answer or definition value. Prompts show
// Message and ask again.
type ValidationError struct {
	// Field names what was validated.
	Field string

	// Message is the operator facing explanation.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// fromValidatorError converts validator errors into a single
// *ValidationError listing every failed field.
func fromValidatorError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, fieldPath(ve)+": "+formatValidationError(ve))
	}
	return &ValidationError{
		Field:   fieldPath(valErrs[0]),
		Message: strings.Join(messages, "; "),
	}
}

// fieldPath returns the namespace of the failed field without the root
// struct name, e.g. "Grid[0][1].name".
func fieldPath(ve validator.FieldError) string {
	ns := ve.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "ctype":
		return "must only contain characters, numbers and underscores"
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
