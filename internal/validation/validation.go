// Package validation checks builder inputs against their structural
// invariants and reports violations as *models.InvalidScenarioError named
// after the configuration key that supplied the value.
package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/cloudlet-scenario/pkg/models"
)

// Validator wraps the underlying validator. Struct fields are named in errors
// by their `param` tag, falling back to the Go field name.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("param"); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return &Validator{validate: v}
}

var std = New()

// Struct validates s with the shared Validator.
func Struct(s any) error {
	return std.Struct(s)
}

// Var validates a single value with the shared Validator.
func Var(param string, value any, tag string) error {
	return std.Var(param, value, tag)
}

// Struct validates s and returns the first violation.
func (v *Validator) Struct(s any) error {
	return convert("", v.validate.Struct(s))
}

// Var validates value against tag, naming it param on failure.
func (v *Validator) Var(param string, value any, tag string) error {
	return convert(param, v.validate.Var(value, tag))
}

func convert(param string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name := fe.Field()
	if name == "" {
		name = param
	}
	return &models.InvalidScenarioError{
		Parameter: name,
		Value:     fe.Value(),
		Reason:    reason(fe),
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
