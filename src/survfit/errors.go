package survfit

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInputKind is returned when an input is neither a
// competing-risks result nor a multi-state result.
var ErrUnsupportedInputKind = errors.New("survfit: unsupported result kind")

// MalformedNameError reports a composite series name that does not split
// into exactly a group and an event on the chosen separator.
type MalformedNameError struct {
	Name      string
	Separator string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("survfit: series name %q does not split into group%sevent on separator %q",
		e.Name, e.Separator, e.Separator)
}

// ShapeError reports mismatched dimensions in a result: probability matrix
// vs time vector, strata counts vs row count, or supplied display names vs
// series count. Row is only meaningful when a specific row is at fault.
type ShapeError struct {
	Reason string
	Want   int
	Got    int
	Row    int
}

func (e *ShapeError) Error() string {
	if e.Want != 0 || e.Got != 0 {
		return fmt.Sprintf("survfit: invalid result shape: %s (want %d, got %d)", e.Reason, e.Want, e.Got)
	}
	return "survfit: invalid result shape: " + e.Reason
}
