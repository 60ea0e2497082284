// Package validation holds the per-entity form validators used before any
// mutation is sent to the backend. Validators never panic and never return
// transport errors; they report per-field messages and the caller blocks
// submission while the map is non-empty.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// First returns the message to surface in the toast: the first error in
// field-declaration order.
func (e Errors) First(order []string) string {
	for _, field := range order {
		if msg, ok := e[field]; ok {
			return msg
		}
	}
	for _, msg := range e {
		return msg
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// runTags evaluates the struct tags of a form and translates validator
// errors into per-field messages.
func runTags(form interface{}) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = "invalid form"
		return errs
	}
	for _, fe := range fieldErrs {
		if _, ok := errs[fe.Field()]; ok {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return "must not be negative"
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid id"
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}

// requireTrimmed rejects strings that are empty after trimming, which the
// required tag alone does not catch.
func requireTrimmed(errs Errors, field, value string) {
	if _, ok := errs[field]; ok {
		return
	}
	if strings.TrimSpace(value) == "" {
		errs[field] = "is required"
	}
}
