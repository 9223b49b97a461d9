package services

import "testing"

func TestValidateRegistration_FieldOrder(t *testing.T) {
	t.Parallel()

	verr := validateRegistration(RegisterInput{})
	if verr == nil {
		t.Fatalf("empty input must fail validation")
	}

	want := []string{"firstName", "lastName", "email", "password"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d field errors, got %d", len(want), len(verr.Fields))
	}
	for i, field := range want {
		if verr.Fields[i].Field != field {
			t.Fatalf("field %d: got %q want %q", i, verr.Fields[i].Field, field)
		}
	}
}

func TestValidateRegistration_Cases(t *testing.T) {
	t.Parallel()

	base := RegisterInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "password",
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantField string
	}{
		{"valid", func(in *RegisterInput) {}, ""},
		{"blank first name", func(in *RegisterInput) { in.FirstName = "  " }, "firstName"},
		{"blank last name", func(in *RegisterInput) { in.LastName = "" }, "lastName"},
		{"invalid email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"email with display name", func(in *RegisterInput) { in.Email = "John <john@example.com>" }, "email"},
		{"short password", func(in *RegisterInput) { in.Password = "12345" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			verr := validateRegistration(in)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("expected valid input, got %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected validation error on %s", tt.wantField)
			}
			if verr.Fields[0].Field != tt.wantField {
				t.Fatalf("got field %q want %q", verr.Fields[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: []FieldError{{Field: "name", Message: "Name is required"}}}
	if verr.Error() != "validation failed: name: Name is required" {
		t.Fatalf("unexpected message: %q", verr.Error())
	}
}
