package service

import (
	"errors"
	"fmt"
)

// Error kinds for the case lifecycle and directory operations. Every
// failure is a synchronous return, never retried: each one reflects a
// caller input or sequencing mistake, not a transient fault.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced case/lawyer/branch that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition marks a stage that is not the immediate
	// successor of the case's current stage.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrPrecondition marks a failed stage-specific guard, e.g. advancing
	// to assigned without a lawyer or settling without a compensation amount.
	ErrPrecondition = errors.New("precondition failed")

	// ErrInvalidState marks a mutation on a case whose status forbids it,
	// e.g. editing expenses on a closed case.
	ErrInvalidState = errors.New("invalid case state")
)

// ConflictError reports a lawyer removal blocked by cases still referencing
// the lawyer in a non-closed status. ActiveCases is surfaced to the caller
// so it can present the blocking count.
type ConflictError struct {
	ActiveCases int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("lawyer has %d active case(s)", e.ActiveCases)
}
