package services

import (
	"net/mail"
	"strings"
)

// FieldError names a single invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries per-field messages for user-correctable input
// problems. Fields keeps the order the checks ran in.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateRegistration checks the registration input shape. The check order
// is fixed: firstName, lastName, email, password.
func validateRegistration(in RegisterInput) *ValidationError {
	var fields []FieldError

	if strings.TrimSpace(in.FirstName) == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if !validEmail(in.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Email is invalid"})
	}
	if len(in.Password) < 6 {
		fields = append(fields, FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
