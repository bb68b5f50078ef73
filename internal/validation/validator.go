package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("cycle_day", validateCycleDay)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("not_blank", validateNotBlank)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("finite", validateFinite)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

// validateMonth accepts a calendar month number, 1 through 12
func validateMonth(fl validator.FieldLevel) bool {
	return inRange(fl.Field(), 1, 12)
}

// validateCycleDay accepts a day of month, 1 through 31
func validateCycleDay(fl validator.FieldLevel) bool {
	return inRange(fl.Field(), 1, 31)
}

func inRange(field reflect.Value, lo, hi int64) bool {
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		return n >= lo && n <= hi
	default:
		return false
	}
}

// validateISODate accepts YYYY-MM-DD calendar dates
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validatePositiveAmount validates that an amount is finite and greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return isFinite(f) && f > 0
	default:
		return false
	}
}

// validateFinite rejects NaN and the infinities, which gt and gte let through
func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return isFinite(fl.Field().Float())
	default:
		return true
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// FieldErrors converts a validation error into a field name to message map.
// Errors that did not come from the validator are reported under "request".
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

// Details flattens FieldErrors into sorted "field: message" strings
func Details(err error) []string {
	fields := FieldErrors(err)
	details := make([]string, 0, len(fields))
	for field, msg := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(details)
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_blank":
		return "is required"
	case "gt", "positive_amount":
		return "must be greater than 0"
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "month":
		return "must be between 1 and 12"
	case "cycle_day":
		return "must be between 1 and 31"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "finite":
		return "must be a finite number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
