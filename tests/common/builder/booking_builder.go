//go:build unit || e2e

package builder

import (
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

// BaseTime anchors every builder window so tests stay deterministic.
var BaseTime = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	RequesterID uuid.UUID
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	Note        string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		EquipmentID: uuid.New(),
		RequesterID: uuid.New(),
		StartAt:     BaseTime,
		EndAt:       BaseTime.Add(2 * time.Hour),
		Status:      "pending",
		Note:        "",
	}
}

func (b *BookingBuilder) WithEquipment(id uuid.UUID) *BookingBuilder {
	b.EquipmentID = id
	return b
}

func (b *BookingBuilder) WithRequester(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartAt = start
	b.EndAt = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	w, err := booking.NewWindow(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.EquipmentID, b.RequesterID, w, b.Note)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		EquipmentID: b.EquipmentID,
		RequesterID: b.RequesterID,
		Window:      booking.ReconstructWindow(b.StartAt, b.EndAt),
		Status:      booking.Status(b.Status),
		Note:        b.Note,
		CreatedAt:   BaseTime.Add(-time.Hour),
		UpdatedAt:   BaseTime.Add(-time.Hour),
	}
}

func (b *BookingBuilder) BuildOccupying() shared.OccupyingBooking {
	return shared.OccupyingBooking{
		BookingID:   b.ID,
		EquipmentID: b.EquipmentID,
		Window:      booking.ReconstructWindow(b.StartAt, b.EndAt),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"equipment_id": b.EquipmentID.String(),
		"start_at":     b.StartAt.Format(time.RFC3339),
		"end_at":       b.EndAt.Format(time.RFC3339),
	}
}
