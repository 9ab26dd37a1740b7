package validation

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidator_Passes(t *testing.T) {
	err := NewConfigValidator("TestConfig").
		Required("Name", "value").
		Positive("Workers", 4).
		RangeInt("Size", 8, 1, 16).
		Probability("Rate", 0.5).
		Distribution("Prior", []float64{0.25, 0.25, 0.5}).
		Validate()
	if err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig").Required("Name", "")
	if !cv.HasErrors() {
		t.Error("expected an error for empty required field")
	}
}

func TestConfigValidator_Probability(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{"zero", 0, true},
		{"one", 1, true},
		{"half", 0.5, true},
		{"negative", -0.01, false},
		{"above one", 1.01, false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("TestConfig").Probability("P", tt.value)
			if cv.HasErrors() == tt.valid {
				t.Errorf("Probability(%v): HasErrors() = %v, want %v", tt.value, cv.HasErrors(), !tt.valid)
			}
		})
	}
}

func TestConfigValidator_Distribution(t *testing.T) {
	if err := NewConfigValidator("C").Distribution("D", []float64{0.5, 0.5}).Validate(); err != nil {
		t.Errorf("valid distribution rejected: %v", err)
	}
	if err := NewConfigValidator("C").Distribution("D", []float64{0.5, 0.6}).Validate(); err == nil {
		t.Error("distribution summing past 1 accepted")
	}
	if err := NewConfigValidator("C").Distribution("D", []float64{1.5, -0.5}).Validate(); err == nil {
		t.Error("distribution with out-of-range entries accepted")
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		Required("Name", "").
		Positive("Workers", 0).
		Probability("Rate", 2)

	if len(cv.Errors()) != 3 {
		t.Errorf("Errors() has %d entries, want 3", len(cv.Errors()))
	}

	err := cv.Validate()
	if err == nil {
		t.Fatal("expected combined error")
	}
	for _, e := range cv.Errors() {
		if !errors.Is(err, e) {
			t.Errorf("combined error does not wrap %v", e)
		}
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		Custom("Field", func() error { return errors.New("boom") })
	if !cv.HasErrors() {
		t.Error("custom error not collected")
	}
}
