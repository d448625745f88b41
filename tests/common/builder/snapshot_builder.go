//go:build unit || e2e

package builder

import (
	"equiplend/internal/domain/equipment"
	"equiplend/internal/domain/user"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentSnapshotBuilder struct {
	ID            uuid.UUID
	TypeID        uuid.UUID
	Name          string
	Status        string
	IsActive      bool
	TypeExclusive bool
}

func NewEquipmentSnapshotBuilder() *EquipmentSnapshotBuilder {
	return &EquipmentSnapshotBuilder{
		ID:       uuid.New(),
		TypeID:   uuid.New(),
		Name:     "Sony FX3",
		Status:   "ready",
		IsActive: true,
	}
}

func (e *EquipmentSnapshotBuilder) WithStatus(status string) *EquipmentSnapshotBuilder {
	e.Status = status
	return e
}

func (e *EquipmentSnapshotBuilder) Inactive() *EquipmentSnapshotBuilder {
	e.IsActive = false
	return e
}

func (e *EquipmentSnapshotBuilder) Exclusive() *EquipmentSnapshotBuilder {
	e.TypeExclusive = true
	return e
}

func (e *EquipmentSnapshotBuilder) Build() *shared.EquipmentSnapshot {
	return &shared.EquipmentSnapshot{
		ID:            e.ID,
		TypeID:        e.TypeID,
		Name:          e.Name,
		Status:        equipment.Status(e.Status),
		IsActive:      e.IsActive,
		TypeExclusive: e.TypeExclusive,
	}
}

type UserSnapshotBuilder struct {
	ID          uuid.UUID
	Email       string
	Role        string
	Eligibility string
	IsActive    bool
}

func NewUserSnapshotBuilder() *UserSnapshotBuilder {
	return &UserSnapshotBuilder{
		ID:          uuid.New(),
		Email:       "member@example.com",
		Role:        "member",
		Eligibility: "approved",
		IsActive:    true,
	}
}

func (u *UserSnapshotBuilder) WithRole(role string) *UserSnapshotBuilder {
	u.Role = role
	return u
}

func (u *UserSnapshotBuilder) WithEligibility(e string) *UserSnapshotBuilder {
	u.Eligibility = e
	return u
}

func (u *UserSnapshotBuilder) Inactive() *UserSnapshotBuilder {
	u.IsActive = false
	return u
}

func (u *UserSnapshotBuilder) Build() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:          u.ID,
		Email:       u.Email,
		Role:        user.Role(u.Role),
		Eligibility: user.Eligibility(u.Eligibility),
		IsActive:    u.IsActive,
	}
}
