package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"equiplend/internal/domain/booking"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

// OccupancyReader is the external store capability the conflict checker
// needs: the non-terminal bookings of a group of equipment units whose
// windows overlap the candidate window, optionally excluding the booking
// being re-validated.
type OccupancyReader interface {
	OccupyingBookings(ctx context.Context, equipmentIDs []uuid.UUID, w booking.Window, exclude *uuid.UUID) ([]shared.OccupyingBooking, error)
}

// CatalogReader resolves the conflict scope: the unit itself, or every unit
// of its type when the type is an exclusive pool.
type CatalogReader interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*shared.EquipmentSnapshot, error)
	UnitIDsOfType(ctx context.Context, typeID uuid.UUID) ([]uuid.UUID, error)
}

// RequesterReader supplies the eligibility snapshot checked before any
// conflict lookup is performed.
type RequesterReader interface {
	UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
}

// CredentialReader is used only by login.
type CredentialReader interface {
	CredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error)
}
