// Package validator adapts go-playground/validator to Echo's Validator
// interface and turns tag failures into per-field messages.
package validator

import (
	"reflect"
	"strings"

	"feastly/internal/errors"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationError carries one message per failed field. The error middleware
// renders the whole list in the 400 response body.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

type echoValidator struct {
	validate *validatorlib.Validate
}

// New builds the request validator. Field names in messages come from the
// json tag so they match what the client actually sent.
func New() echo.Validator {
	validate := validatorlib.New(validatorlib.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validatorlib.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return &ValidationError{Messages: messages}
}

func fieldMessage(fieldErr validatorlib.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at least " + fieldErr.Param() + " characters long"
		}
		if fieldErr.Kind() == reflect.Slice {
			return field + " must contain at least " + fieldErr.Param() + " item(s)"
		}

		return field + " must be at least " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at most " + fieldErr.Param() + " characters long"
		}

		return field + " must be at most " + fieldErr.Param()
	case "oneof":
		return field + " must be one of: " + strings.Join(strings.Fields(fieldErr.Param()), ", ")
	case "latitude":
		return field + " must be a valid latitude"
	case "longitude":
		return field + " must be a valid longitude"
	case "e164":
		return field + " must be a valid phone number"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}
