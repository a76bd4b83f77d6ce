// Package validate runs go-playground/validator over request inputs and turns
// failures into apperr.ValidationError keyed by JSON field name, with
// Laravel-style messages.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"farmbook/pkg/apperr"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return v
}

// Struct validates s and always returns a non-nil collector so callers can
// keep adding rule failures to it.
func Struct(s any) *apperr.ValidationError {
	ve := apperr.NewValidation()
	err := instance().Struct(s)
	if err == nil {
		return ve
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ve.Add("payload", "The given data was invalid.")
	}
	for _, fe := range errs {
		field := fe.Field()
		if ve.Has(field) {
			continue
		}
		ve.Add(field, message(fe))
	}
	return ve
}

// Echo adapts the package to echo's Validator interface.
type Echo struct{}

func (Echo) Validate(i any) error { return Struct(i).OrNil() }

func message(fe validator.FieldError) string {
	f := Label(fe.Field())
	switch fe.Tag() {
	case "required":
		return Required(fe.Field())
	case "oneof":
		return Invalid(fe.Field())
	case "datetime":
		return fmt.Sprintf("The %s field must match the format %s.", f, humanLayout(fe.Param()))
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", f, fe.Param())
	case "gte", "min":
		if isString(fe) {
			return fmt.Sprintf("The %s field must be at least %s characters.", f, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", f, fe.Param())
	case "lte", "max":
		if isString(fe) {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", f, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", f, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", f)
	default:
		return fmt.Sprintf("The %s field is invalid.", f)
	}
}

func isString(fe validator.FieldError) bool {
	k := fe.Kind()
	if k == reflect.Ptr {
		k = fe.Type().Elem().Kind()
	}
	return k == reflect.String
}

func humanLayout(layout string) string {
	switch layout {
	case "2006-01-02":
		return "Y-m-d"
	case "15:04":
		return "H:i"
	default:
		return layout
	}
}

// Label turns a JSON field name into the words used in messages.
func Label(field string) string { return strings.ReplaceAll(field, "_", " ") }

func Required(field string) string {
	return fmt.Sprintf("The %s field is required.", Label(field))
}

func Invalid(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", Label(field))
}

func Taken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", Label(field))
}

func After(field, other string) string {
	return fmt.Sprintf("The %s field must be a date after %s.", Label(field), Label(other))
}

func AfterOrEqual(field, other string) string {
	return fmt.Sprintf("The %s field must be a date after or equal to %s.", Label(field), Label(other))
}

func DateFormat(field string) string {
	return fmt.Sprintf("The %s field must match the format Y-m-d.", Label(field))
}

func TimeFormat(field string) string {
	return fmt.Sprintf("The %s field must match the format H:i.", Label(field))
}

func TimeAfter(field, other string) string {
	return fmt.Sprintf("The %s field must be a time after %s.", Label(field), Label(other))
}

func RequiredWith(field, other string) string {
	return fmt.Sprintf("The %s field is required when %s is present.", Label(field), Label(other))
}

func Between(field string, lo, hi any) string {
	return fmt.Sprintf("The %s field must be between %v and %v.", Label(field), lo, hi)
}

func GreaterThan(field string, n any) string {
	return fmt.Sprintf("The %s field must be greater than %v.", Label(field), n)
}

func AtLeast(field string, n any) string {
	return fmt.Sprintf("The %s field must be at least %v.", Label(field), n)
}

// WrongType is the message for a JSON value of the wrong kind, e.g. a string
// sent for an integer field.
func WrongType(field string, k reflect.Kind) string {
	var want string
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		want = "an integer"
	case reflect.Float32, reflect.Float64:
		want = "a number"
	case reflect.String:
		want = "a string"
	case reflect.Bool:
		want = "true or false"
	case reflect.Slice, reflect.Array:
		want = "an array"
	default:
		return fmt.Sprintf("The %s field is invalid.", Label(field))
	}
	return fmt.Sprintf("The %s field must be %s.", Label(field), want)
}
