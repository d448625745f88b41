package shared

import (
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/equipment"
	"equiplend/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type EquipmentSnapshot struct {
	ID            uuid.UUID
	TypeID        uuid.UUID
	Name          string
	Status        equipment.Status
	IsActive      bool
	TypeExclusive bool
}

// IsBookable mirrors equipment.Equipment.IsBookable for rows loaded outside
// the aggregate. A borrowed unit stays bookable for future windows.
func (s *EquipmentSnapshot) IsBookable() bool {
	if !s.IsActive {
		return false
	}
	return s.Status != equipment.StatusRetired && s.Status != equipment.StatusMaintenance
}

// OccupyingBooking is one row of the queryOccupyingBookings contract: a
// non-terminal booking together with its reserved window.
type OccupyingBooking struct {
	BookingID   uuid.UUID
	EquipmentID uuid.UUID
	Window      booking.Window
}

type BookingSnapshot struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	RequesterID uuid.UUID
	Window      booking.Window
	Status      booking.Status
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UserSnapshot struct {
	ID          uuid.UUID
	Email       string
	Role        user.Role
	Eligibility user.Eligibility
	IsActive    bool
}

func (s *UserSnapshot) MayBook() bool {
	return s.IsActive && s.Eligibility.MayBook()
}

// UserCredentials is the login-path projection: the snapshot plus the
// stored password hash. Never returned by any other read.
type UserCredentials struct {
	UserSnapshot
	PasswordHash string
}
