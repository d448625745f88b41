package booking

import (
	"fmt"
	"time"
)

// Policy holds the organization's lending thresholds. Zero disables a check.
type Policy struct {
	MaxDurationDays int
	MinAdvanceHours int
}

// Check evaluates the proposal window against the policy. now is supplied by
// the caller so the check stays a pure function of its inputs.
func (p Policy) Check(now time.Time, w Window) *PolicyBreach {
	if p.MaxDurationDays > 0 {
		limit := time.Duration(p.MaxDurationDays) * 24 * time.Hour
		if w.Duration() > limit {
			return &PolicyBreach{
				Threshold: "max_duration_days",
				Limit:     p.MaxDurationDays,
			}
		}
	}

	if p.MinAdvanceHours > 0 {
		earliest := now.Add(time.Duration(p.MinAdvanceHours) * time.Hour)
		if w.Start().Before(earliest) {
			return &PolicyBreach{
				Threshold: "min_advance_hours",
				Limit:     p.MinAdvanceHours,
			}
		}
	}

	return nil
}

func (b PolicyBreach) String() string {
	return fmt.Sprintf("%s (limit %d)", b.Threshold, b.Limit)
}
