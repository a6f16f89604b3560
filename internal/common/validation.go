package common

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var handleRegex = regexp.MustCompile(`^[a-z0-9_.]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("handle", validateHandle)
		_ = v.RegisterValidation("password", validatePassword)
		validate = v
	})
	return validate
}

// ValidateStruct checks the validate tags of s and returns a *ValidationError
// naming each failing field by its json name.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Fields: []string{"invalid request"}}
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fieldMessage(e))
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "handle":
		return fmt.Sprintf("%s can only contain lowercase letters, numbers, dots and underscores", field)
	case "password":
		return fmt.Sprintf("%s must be at most %d bytes", field, MaxPasswordBytes)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func validateHandle(fl validator.FieldLevel) bool {
	return handleRegex.MatchString(fl.Field().String())
}

// validatePassword bounds the byte length; max counts runes.
func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// NormalizeUsername lowercases and trims a username or email before lookups.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
