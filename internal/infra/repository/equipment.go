package repository

import (
	"context"

	"equiplend/internal/domain/equipment"
	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
)

type EquipmentRepository struct {
	db db.DBTX
}

func NewEquipmentRepository(dbtx db.DBTX) *EquipmentRepository {
	return &EquipmentRepository{db: dbtx}
}

// LockType takes a row lock on the equipment type for the rest of the
// transaction. Bookings against an exclusive pool serialize on this lock, so
// the in-transaction conflict re-check always observes every committed and
// in-flight sibling booking.
func (r *EquipmentRepository) LockType(ctx context.Context, typeID uuid.UUID) error {
	const q = `SELECT id FROM equipment_types WHERE id = $1 FOR UPDATE`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, typeID).Scan(&id); err != nil {
		return infra.WrapRepoErr(err, infra.KindDBFailure, "equipment.LockType")
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status equipment.Status) error {
	const q = `
		UPDATE equipment
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(err, infra.KindDBFailure, "equipment.UpdateStatus")
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(
			infra.WrapRepoErr(errs.New("no rows updated"), infra.KindNotFound, "equipment.UpdateStatus"),
			errs.ErrEquipmentNotFound,
		)
	}
	return nil
}
