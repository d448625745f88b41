package queries

//go:generate mockgen -source=equipment.go -destination=../../../tests/mock/queries/equipment.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type EquipmentView struct {
	ID            uuid.UUID
	TypeID        uuid.UUID
	TypeName      string
	Name          string
	Status        string
	IsActive      bool
	TypeExclusive bool
}

type EquipmentTypeView struct {
	ID        uuid.UUID
	Name      string
	Exclusive bool
	UnitCount int
}

type ListEquipmentFilter struct {
	TypeID     *uuid.UUID
	Status     *string
	ActiveOnly bool
	Limit      int
	Offset     int
}

type EquipmentQueries interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	ListEquipment(ctx context.Context, f ListEquipmentFilter) ([]EquipmentView, error)
	ListEquipmentTypes(ctx context.Context) ([]EquipmentTypeView, error)
}
