package middleware

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// SetupValidator makes FieldError.Field report the json or form name of a
// field (for example "limit" instead of "Limit") and registers the
// "password" tag, which bounds a string by its length in bytes.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("password", validatePassword)
	}
}

// validator's max counts runes, bcrypt counts bytes.
func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// FieldError is a validation failure on one field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors lists the field failures carried by err, or nil when err is
// not a validator error.
func FieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, FieldError{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "datetime":
		return "Must be a date formatted as " + e.Param()
	case "url":
		return "Invalid URL format"
	case "password":
		return "Must be at most " + strconv.Itoa(MaxPasswordBytes) + " bytes"
	default:
		return "Invalid value"
	}
}
