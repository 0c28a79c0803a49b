package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	ErrValidation       = errors.New("invalid expense")
	ErrEmptyDescription = errors.New("description is empty")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrPersistence      = errors.New("persistence failed")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// ValidationError reports a rejected field. The store is left untouched.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// PersistenceError reports a failed slot read or write. On save failures the
// in-memory mutation has already been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s expenses: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is makes every PersistenceError match ErrPersistence.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, length)
}
