package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNoteTooLong       = errors.New("booking note is too long (max 500 characters)")
)

const MaxNoteLength = 500

// Booking is a loan/reservation request for one equipment unit.
type Booking struct {
	id          uuid.UUID
	equipmentID uuid.UUID
	requesterID uuid.UUID
	window      Window
	status      Status
	note        string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending booking. The window has already been validated
// by NewWindow; eligibility, policy and conflict checks are the validator's
// responsibility.
func NewBooking(equipmentID, requesterID uuid.UUID, window Window, note string) (*Booking, error) {
	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Booking{
		id:          uuid.New(),
		equipmentID: equipmentID,
		requesterID: requesterID,
		window:      window,
		status:      StatusPending,
		note:        note,
	}, nil
}

func ReconstructBooking(
	id, equipmentID, requesterID uuid.UUID,
	window Window,
	status Status,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		equipmentID: equipmentID,
		requesterID: requesterID,
		window:      window,
		status:      status,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Approve moves a pending booking to approved. Conflict re-validation against
// the current occupancy set happens in the use case before this is called.
func (b *Booking) Approve() error {
	return b.transition(StatusApproved, StatusPending)
}

func (b *Booking) Reject() error {
	return b.transition(StatusRejected, StatusPending)
}

// Cancel is available to the requester while the loan has not started.
func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled, StatusPending, StatusApproved)
}

// Checkout marks the equipment as handed over.
func (b *Booking) Checkout() error {
	return b.transition(StatusActive, StatusApproved)
}

// Complete marks the equipment as returned.
func (b *Booking) Complete() error {
	return b.transition(StatusCompleted, StatusActive)
}

func (b *Booking) transition(to Status, from ...Status) error {
	for _, s := range from {
		if b.status == s {
			b.status = to
			return nil
		}
	}
	return ErrInvalidTransition
}

func (b *Booking) Occupies() bool {
	return b.status.Occupies()
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !now.Before(b.window.End())
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) EquipmentID() uuid.UUID { return b.equipmentID }
func (b *Booking) RequesterID() uuid.UUID { return b.requesterID }
func (b *Booking) Window() Window         { return b.window }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Note() string           { return b.note }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
