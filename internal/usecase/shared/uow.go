package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/equipment"
	"equiplend/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Pool-backed reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Equipment() EquipmentRepository
	Notifications() NotificationRepository
	Users() UserRepository
	// Reads: the same read contract as CommandReads, bound to this
	// transaction so conflict re-checks observe locked state.
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads is the read contract the booking validator depends on.
// OccupyingBookings implements the queryOccupyingBookings store contract:
// non-terminal bookings only, optionally excluding one booking id.
type CommandReads interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*EquipmentSnapshot, error)
	UnitIDsOfType(ctx context.Context, typeID uuid.UUID) ([]uuid.UUID, error)
	OccupyingBookings(ctx context.Context, equipmentIDs []uuid.UUID, w booking.Window, exclude *uuid.UUID) ([]OccupyingBooking, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type EquipmentRepository interface {
	// LockType serializes bookings across an exclusive type pool for the
	// duration of the transaction.
	LockType(ctx context.Context, typeID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status equipment.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
