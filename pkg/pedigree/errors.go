package pedigree

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyInput     = errors.New("input contains no records")
	ErrMissingColumn  = errors.New("missing required column")
	ErrDuplicateName  = errors.New("duplicate person name")
	ErrUnknownParent  = errors.New("parent not present in dataset")
	ErrSingleParent   = errors.New("exactly one parent named")
	ErrAncestryCycle  = errors.New("ancestry cycle")
	ErrTooManyPeople  = errors.New("pedigree exceeds enumeration limit")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrPersonNotFound = errors.New("person not found")
)

// Error provides structured error information for pedigree operations.
type Error struct {
	Op     string // Operation that failed (e.g., "LoadCSV", "New")
	Person string // Person name (if applicable)
	Field  string // Record field (for input errors)
	Row    int    // 1-based data row (for input errors, 0 if n/a)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Row != 0 && e.Person != "":
		return fmt.Sprintf("%s row %d (%s): %v", e.Op, e.Row, e.Person, e.Cause)
	case e.Row != 0:
		return fmt.Sprintf("%s row %d: %v", e.Op, e.Row, e.Cause)
	case e.Person != "" && e.Field != "":
		return fmt.Sprintf("%s %s (field %s): %v", e.Op, e.Person, e.Field, e.Cause)
	case e.Person != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Person, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
