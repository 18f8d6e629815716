// Package temporal provides closed time intervals and their overlap test.
package temporal

import (
	"fmt"
	"math"
)

// Window is a closed interval [Start, End] in seconds.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewWindow creates a Window, rejecting reversed or non-finite bounds.
func NewWindow(start, end float64) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate checks that the window is finite and Start <= End.
func (w Window) Validate() error {
	if !finite(w.Start) || !finite(w.End) {
		return fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidWindow, w.Start, w.End)
	}
	if w.End < w.Start {
		return fmt.Errorf("%w: end %v precedes start %v", ErrInvalidWindow, w.End, w.Start)
	}
	return nil
}

// Duration returns End - Start.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// Intersect returns the common part of w and o. The boolean is false when the
// windows do not overlap.
func (w Window) Intersect(o Window) (Window, bool) {
	if !Overlap(w, o) {
		return Window{}, false
	}
	return Window{Start: math.Max(w.Start, o.Start), End: math.Min(w.End, o.End)}, true
}

// String renders the window as "Between 0.00s and 50.00s".
func (w Window) String() string {
	return fmt.Sprintf("Between %.2fs and %.2fs", w.Start, w.End)
}

// Overlap reports whether two closed windows share at least one instant.
// Touching endpoints count as overlap.
func Overlap(a, b Window) bool {
	return a.Start <= b.End && a.End >= b.Start
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
