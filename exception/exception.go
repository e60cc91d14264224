package exception

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages; Message holds the first
// failing field's text so it can be surfaced verbatim.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ConflictError struct {
	Message string `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

type AuthError struct {
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return e.Message
}

type ForbiddenError struct {
	Message string `json:"message"`
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Message string `json:"message"`
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewValidation(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func NewAuth(message string) *AuthError {
	return &AuthError{Message: message}
}

func NewForbidden(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// Translate converts validator.ValidationErrors into a ValidationError
// with readable per-field messages. Other errors pass through unchanged.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	first := ""
	for _, fe := range verrs {
		name := fieldName(fe.Field())
		msg := fieldMessage(name, fe)
		if first == "" {
			first = msg
		}
		fields[name] = msg
	}

	return NewValidation(first, fields)
}

func fieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func fieldMessage(name string, fe validator.FieldError) string {
	label := upperFirst(name)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "email":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
