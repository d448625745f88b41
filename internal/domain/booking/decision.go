package booking

import (
	"github.com/google/uuid"
)

// RejectReason tags why a booking proposal was refused. All reasons are
// expected, user-recoverable conditions rather than faults.
type RejectReason string

const (
	ReasonNotEligible         RejectReason = "not_eligible"
	ReasonInvalidWindow       RejectReason = "invalid_window"
	ReasonPolicyViolation     RejectReason = "policy_violation"
	ReasonResourceUnavailable RejectReason = "resource_unavailable"
	ReasonSchedulingConflict  RejectReason = "scheduling_conflict"
)

// ConflictDetail identifies one existing booking whose window overlaps the
// proposal, so callers can show the requester which slot is taken.
type ConflictDetail struct {
	BookingID uuid.UUID
	Window    Window
}

// PolicyBreach names the threshold a proposal violated.
type PolicyBreach struct {
	Threshold string // "max_duration_days" or "min_advance_hours"
	Limit     int
}

// Decision is the validator's tagged result. Expected rejections travel here,
// never as Go errors; only infrastructure faults escalate as errors.
type Decision struct {
	Accepted  bool
	Reason    RejectReason
	Message   string
	Conflicts []ConflictDetail
	Breach    *PolicyBreach
}

func Accept() Decision {
	return Decision{Accepted: true}
}

func Reject(reason RejectReason, msg string) Decision {
	return Decision{Reason: reason, Message: msg}
}

func RejectWithConflicts(conflicts []ConflictDetail, msg string) Decision {
	return Decision{
		Reason:    ReasonSchedulingConflict,
		Message:   msg,
		Conflicts: conflicts,
	}
}

func RejectWithBreach(breach PolicyBreach, msg string) Decision {
	return Decision{
		Reason:  ReasonPolicyViolation,
		Message: msg,
		Breach:  &breach,
	}
}
