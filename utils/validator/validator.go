package validatorx

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/expenzo/expenzo-backend/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRegex      = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	upperRegex      = regexp.MustCompile(`[A-Z]`)
	lowerRegex      = regexp.MustCompile(`[a-z]`)
	digitRegex      = regexp.MustCompile(`[0-9]`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// Report json field names so responses match the request body shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("person_name", func(fl gpvalidator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_number", func(fl gpvalidator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_strength", func(fl gpvalidator.FieldLevel) bool {
		s := fl.Field().String()
		return upperRegex.MatchString(s) && lowerRegex.MatchString(s) && digitRegex.MatchString(s)
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors converts a validation error into the full list of violated
// fields. Returns nil when err is not a validator error.
func FieldErrors(err error) []model.FieldError {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, model.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe gpvalidator.FieldError) string {
	label := labelFor(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Please provide a valid email address"
	case "url":
		return "Please provide a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s digits", label, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", label)
	case "gte":
		return fmt.Sprintf("%s must be a positive number", label)
	case "oneof":
		return fmt.Sprintf("Invalid %s", strings.ToLower(label))
	case "person_name":
		return fmt.Sprintf("%s can only contain letters and spaces", label)
	case "phone_number":
		return fmt.Sprintf("%s can only contain numbers, +, -, spaces, and parentheses", label)
	case "password_strength":
		return fmt.Sprintf("%s must contain at least one uppercase letter, one lowercase letter, and one number", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func labelFor(field string) string {
	if field == "" {
		return "Field"
	}
	if field == "otp" {
		return "OTP"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
