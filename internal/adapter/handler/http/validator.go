package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

// enumValue is implemented by the closed string enums of the domain.
type enumValue interface {
	IsValid() bool
}

// Validator adapts validator/v10 to echo.Validator. Failures are returned as
// INVALID_ARGUMENT errors with one FieldError per rejected field, named by
// the json or query tag.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.IsValid()
	})
	return &Validator{validate: v}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !apperrors.As(err, &validationErrs) {
		return apperrors.Internal("request validation failed", err)
	}

	fields := make([]apperrors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, apperrors.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return apperrors.Validation(fields...)
}
