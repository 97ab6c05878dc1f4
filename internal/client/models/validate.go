package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation wraps every input validation failure.
var ErrValidation = errors.New("validation error")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report JSON names, they are what the user typed into the form
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
		return IsKnownPermission(fl.Field().String())
	})

	return v
}

// Validate checks the validate tags of s. Failures are reported as one
// ErrValidation listing every offending field.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from the current one", field)
	case "permission":
		return fmt.Sprintf("%s has unknown permission %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for %s", field, fe.Tag())
	}
}
