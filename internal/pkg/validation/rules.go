package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// Course field rules, expressed as validator tags
const (
	// CourseIDRule: letters or digits only, at least 3 characters
	CourseIDRule = "required,alphanum,min=3"
	// CourseTitleRule: must contain something other than whitespace
	CourseTitleRule = "notblank"
	// CourseCreditRule: strictly positive
	CourseCreditRule = "gt=0"
	// CapacityRule: strictly positive
	CapacityRule = "gt=0"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance with the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// RegisterValidation only fails on an empty tag or a nil func.
		_ = validate.RegisterValidation("notblank", notBlank)
	})
	return validate
}

// notBlank reports whether a string field has any non-whitespace content.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Field validates a single value against a rule and returns a validation
// CustomError naming the field on failure.
func Field(name string, value interface{}, rule string) error {
	err := Validator().Var(value, rule)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return apperrors.NewValidationError(name + " is invalid").
			WithDetails(map[string]interface{}{"field": name, "rule": rule})
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(formatValidationError(name, fe)).
		WithDetails(map[string]interface{}{"field": name, "tag": fe.Tag(), "value": value})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return field + " must not be empty"
	case "alphanum":
		return field + " must contain only letters or digits"
	case "min":
		return field + " must have at least " + e.Param() + " characters"
	case "gt":
		return field + " must be greater than " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
