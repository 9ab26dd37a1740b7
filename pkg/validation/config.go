package validation

import (
	"errors"
	"fmt"
	"math"
)

// distributionTolerance is how far a probability distribution's sum may
// drift from 1.0 before it is rejected.
const distributionTolerance = 1e-9

// ConfigValidator provides a fluent interface for validating configuration
// values. It collects all validation errors rather than failing on the
// first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// Positive validates that an int field is positive (> 0).
func (cv *ConfigValidator) Positive(field string, value int) *ConfigValidator {
	if value <= 0 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d must be positive", cv.name, field, value))
	}
	return cv
}

// RangeInt validates that an int field is within the specified range.
func (cv *ConfigValidator) RangeInt(field string, value, min, max int) *ConfigValidator {
	if value < min || value > max {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d is outside range [%d, %d]", cv.name, field, value, min, max))
	}
	return cv
}

// Probability validates that a float field is a probability in [0, 1].
func (cv *ConfigValidator) Probability(field string, value float64) *ConfigValidator {
	if math.IsNaN(value) || value < 0 || value > 1 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %v is not a probability in [0, 1]", cv.name, field, value))
	}
	return cv
}

// Distribution validates that the values form a probability distribution:
// every entry in [0, 1] and the entries summing to 1 within tolerance.
func (cv *ConfigValidator) Distribution(field string, values []float64) *ConfigValidator {
	sum := 0.0
	for i, v := range values {
		cv.Probability(fmt.Sprintf("%s[%d]", field, i), v)
		sum += v
	}
	if math.Abs(sum-1.0) > distributionTolerance {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: values sum to %v, want 1.0", cv.name, field, sum))
	}
	return cv
}

// Custom applies a custom validation function.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %w", cv.name, field, err))
	}
	return cv
}

// HasErrors returns true if any validation errors occurred.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errors) > 0
}

// Errors returns all validation errors.
func (cv *ConfigValidator) Errors() []error {
	return cv.errors
}

// Validate returns a combined error if any validations failed.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return errors.Join(cv.errors...)
}
