// Package validator wraps go-playground/validator for the review submission
// boundary. Validation lives here, at the edge; the store assumes validated
// input.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs against their validate tags.
type Validator struct {
	cli *validator.Validate
}

// ValidationError reports one failed field. Field is the JSON name so the
// frontend can attach the message to its input.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New initializes and returns a new Validator. Struct fields report under
// their JSON names.
func New() *Validator {
	cli := validator.New(validator.WithRequiredStructEnabled())
	cli.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{cli: cli}
}

// ValidateStruct validates s and returns one error per failed field, nil
// when the struct is valid.
func (v *Validator) ValidateStruct(s any) []ValidationError {
	err := v.cli.Struct(s)
	if err == nil {
		return nil
	}
	return v.formatErrors(err)
}

func (v *Validator) formatErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Message: err.Error()}}
	}
	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// message renders a human-readable message for the rules the review form
// uses; anything else falls back to the library's description.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be no more than " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return fe.Error()
	}
}
