package booking

// Status is the booking lifecycle state.
//
// pending, approved and active bookings occupy their equipment for the
// requested window; completed, cancelled and rejected bookings never do.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive,
		StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the booking has left the lifecycle and no longer
// blocks other requests.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// Occupies reports whether a booking in this status reserves its equipment
// for its window.
func (s Status) Occupies() bool {
	return s.IsValid() && !s.IsTerminal()
}

// OccupyingStatuses lists the statuses the conflict lookup must consider.
var OccupyingStatuses = []Status{StatusPending, StatusApproved, StatusActive}
