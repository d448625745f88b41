package response

import (
	"equiplend/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	TypeID        uuid.UUID `json:"typeId"`
	TypeName      string    `json:"typeName"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	IsActive      bool      `json:"isActive"`
	TypeExclusive bool      `json:"typeExclusive"`
}

type EquipmentTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Exclusive bool      `json:"exclusive"`
	UnitCount int       `json:"unitCount"`
}

func FromEquipmentView(v *queries.EquipmentView) *EquipmentResponse {
	return &EquipmentResponse{
		ID:            v.ID,
		TypeID:        v.TypeID,
		TypeName:      v.TypeName,
		Name:          v.Name,
		Status:        v.Status,
		IsActive:      v.IsActive,
		TypeExclusive: v.TypeExclusive,
	}
}

func FromEquipmentTypeView(v *queries.EquipmentTypeView) *EquipmentTypeResponse {
	return &EquipmentTypeResponse{
		ID:        v.ID,
		Name:      v.Name,
		Exclusive: v.Exclusive,
		UnitCount: v.UnitCount,
	}
}
