// file: internals/features/scheduling/timetable/errors.go
package timetable

import "fmt"

// WindowError: the working-hours window itself is malformed.
type WindowError struct {
	Window Window
	Reason string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("invalid window %s: %s", e.Window, e.Reason)
}

// UnknownDayError: a timetable key is not one of the seven weekday names.
type UnknownDayError struct {
	Day string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown weekday %q", e.Day)
}

// OutOfWindowError: a slot starts or ends outside the owning window.
type OutOfWindowError struct {
	Day    string
	Index  int
	Slot   Slot
	Window Window
}

func (e *OutOfWindowError) Error() string {
	return fmt.Sprintf("slot %s on %s (index %d) falls outside window %s",
		e.Slot, e.Day, e.Index, e.Window)
}

// OverlapError: two slots on the same day intersect.
type OverlapError struct {
	Day  string
	A, B Slot
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("slots %s and %s overlap on %s", e.A, e.B, e.Day)
}
