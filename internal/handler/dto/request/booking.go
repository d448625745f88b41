package request

import (
	"strings"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Note        *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToInput(requesterID uuid.UUID) (commands.CreateBookingInput, error) {
	w, err := booking.NewWindow(r.StartAt, r.EndAt)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}

	return commands.CreateBookingInput{
		EquipmentID: r.EquipmentID,
		RequesterID: requesterID,
		Window:      w,
		Note:        note,
	}, nil
}

// ValidateBookingRequest is a dry run: same shape as create, never persisted.
type ValidateBookingRequest struct {
	EquipmentID      uuid.UUID  `json:"equipment_id" binding:"required"`
	StartAt          time.Time  `json:"start_at" binding:"required"`
	EndAt            time.Time  `json:"end_at" binding:"required"`
	ExcludeBookingID *uuid.UUID `json:"exclude_booking_id,omitempty"`
}

func (r ValidateBookingRequest) ToInput(requesterID uuid.UUID) commands.ValidateBookingInput {
	// The window stays unvalidated here: a malformed window must come back
	// as a structured decision, not a binding error.
	return commands.ValidateBookingInput{
		EquipmentID:      r.EquipmentID,
		RequesterID:      requesterID,
		Window:           booking.ReconstructWindow(r.StartAt, r.EndAt),
		ExcludeBookingID: r.ExcludeBookingID,
	}
}
