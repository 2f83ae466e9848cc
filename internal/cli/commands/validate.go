package commands

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type joinInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	FullName string `validate:"required,min=2"`
}

// validateJoin checks registration input locally before it hits the server,
// translating validator errors into flag-oriented messages.
func validateJoin(in joinInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		switch fieldErr.Field() {
		case "Email":
			return fmt.Errorf("invalid email address %q", in.Email)
		case "Password":
			return fmt.Errorf("password must be at least 8 characters")
		case "FullName":
			return fmt.Errorf("full name must be at least 2 characters")
		}
	}
	return err
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
