package equipment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("equipment name cannot be empty")
	ErrNameTooLong = errors.New("equipment name is too long (max 255 characters)")
)

const MaxNameLength = 255

// Status tracks the physical state of one unit. Booking eligibility depends
// on it, but transitions are driven by the loan workflow, not by the
// conflict checker.
type Status string

const (
	StatusReady       Status = "ready"
	StatusBorrowed    Status = "borrowed"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReady, StatusBorrowed, StatusMaintenance, StatusRetired:
		return true
	default:
		return false
	}
}

// Equipment is one lendable unit in the catalog.
type Equipment struct {
	id        uuid.UUID
	typeID    uuid.UUID
	name      string
	status    Status
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipment(id, typeID uuid.UUID, name string, status Status, active bool) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !status.IsValid() {
		status = StatusReady
	}

	return &Equipment{
		id:     id,
		typeID: typeID,
		name:   name,
		status: status,
		active: active,
	}, nil
}

// IsBookable reports whether new bookings may target this unit. A borrowed
// unit stays bookable for future windows; retired and maintenance units do
// not accept bookings.
func (e *Equipment) IsBookable() bool {
	if !e.active {
		return false
	}
	switch e.status {
	case StatusRetired, StatusMaintenance:
		return false
	default:
		return true
	}
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) TypeID() uuid.UUID    { return e.typeID }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Status() Status       { return e.status }
func (e *Equipment) IsActive() bool       { return e.active }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
