package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingView is the read-side row, denormalized with the names a list
// screen needs so callers never join on the client.
type BookingView struct {
	ID             uuid.UUID
	EquipmentID    uuid.UUID
	EquipmentName  string
	RequesterID    uuid.UUID
	RequesterEmail string
	StartAt        time.Time
	EndAt          time.Time
	Status         string
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ListBookingsFilter struct {
	EquipmentID *uuid.UUID
	RequesterID *uuid.UUID
	Statuses    []string
	// From/To trim the result to bookings overlapping [From, To).
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type BookingQueries interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, f ListBookingsFilter) ([]BookingView, error)
}
