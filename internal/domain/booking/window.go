package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before end")

// Window is a half-open time interval [start, end). The half-open convention
// is what allows back-to-back bookings: a booking ending at t and another
// starting at t never conflict.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, ErrInvalidWindow
	}
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

// ReconstructWindow rebuilds a window from storage without re-validating.
// Rows already passed the start_at < end_at check constraint.
func ReconstructWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

// Overlaps applies the half-open interval test: two windows overlap iff
// startA < endB && startB < endA. Touching endpoints do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w Window) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

func (w Window) String() string {
	return w.ToTstzrange()
}
