// file: internals/features/scheduling/errs/errors.go
package errs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

/* =======================================================
   Domain error taxonomy shared by the scheduling services.

   Controllers translate these into the JSON envelope;
   storage errors stay wrapped and are reported opaquely.
   ======================================================= */

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrResourceNotFound = errors.New("resource not found")

	// Delta for a scheduled-count adjustment must be an integer-valued number.
	ErrInvalidDelta = errors.New("delta must be an integer")
)

// ConflictError: unique-name (or unique-code) collision inside a session.
type ConflictError struct {
	Entity string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Value)
}

// CrossSessionError: a batch referenced resources that are missing or belong
// to a different session than the target. The whole batch is rejected.
type CrossSessionError struct {
	InvalidIDs []uuid.UUID
}

func (e *CrossSessionError) Error() string {
	return fmt.Sprintf("%d candidate id(s) missing or outside the target session", len(e.InvalidIDs))
}

// ResourceInUseError: delete blocked because dependents still reference the
// resource. Count is the exact number of dependent links.
type ResourceInUseError struct {
	Resource string
	Count    int64
}

func (e *ResourceInUseError) Error() string {
	return fmt.Sprintf("%s still has %d dependent link(s)", e.Resource, e.Count)
}

// CascadeError: a cascade delete failed mid-sequence. Step names the last
// successfully completed step; Partial holds the counts gathered so far.
// The wrapping transaction rolls the partial work back.
type CascadeError struct {
	Step    string
	Partial map[string]int64
	Err     error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade failed after step %q: %v", e.Step, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }
