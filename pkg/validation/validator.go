package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNameLength = 64

	// namePattern rejects names that would collide with the report layout
	// (leading/trailing space, embedded newlines, the colon separator).
	namePattern = regexp.MustCompile(`^[^\s:][^:\n\r]*$`)
)

func init() {
	validate = validator.New()
}

// PersonRecord is one row of the pedigree input before it is resolved into
// the person table. Mother and Father must both be set or both be empty;
// Trait carries the raw observation field ("1", "0", or empty/unknown).
type PersonRecord struct {
	Name   string `validate:"required,max=64"`
	Mother string `validate:"required_with=Father,max=64"`
	Father string `validate:"required_with=Mother,max=64"`
	Trait  string `validate:"-"`
}

// ValidatePersonRecord validates a single input record. Trait values outside
// {"0", "1", ""} are deliberately not rejected; the loader treats them as
// unknown observations.
func ValidatePersonRecord(rec *PersonRecord) error {
	if rec == nil {
		return errors.New("person record cannot be nil")
	}

	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}

	if !namePattern.MatchString(rec.Name) {
		return fmt.Errorf("Name: %q contains invalid characters", rec.Name)
	}
	for _, parent := range []struct{ field, value string }{
		{"Mother", rec.Mother},
		{"Father", rec.Father},
	} {
		if parent.value != "" && !namePattern.MatchString(parent.value) {
			return fmt.Errorf("%s: %q contains invalid characters", parent.field, parent.value)
		}
	}

	if rec.Mother == rec.Name || rec.Father == rec.Name {
		return fmt.Errorf("Name: %q cannot be its own parent", rec.Name)
	}

	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s: required field is missing", fieldErr.Field()))
		case "required_with":
			messages = append(messages, fmt.Sprintf("%s: must be set when %s is set", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s: exceeds maximum length of %s characters", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s: failed %s validation", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
