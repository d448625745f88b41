package readstore

import (
	"context"
	"errors"
	"time"

	"equiplend/internal/domain/booking"
	"equiplend/internal/domain/equipment"
	"equiplend/internal/domain/user"
	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the validator's reads. Bound to the pool it gives the
// advisory pre-check; bound to a transaction it gives the authoritative
// re-check against locked state.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) EquipmentByID(ctx context.Context, id uuid.UUID) (*shared.EquipmentSnapshot, error) {
	const q = `
		SELECT e.id, e.type_id, e.name, e.status, e.is_active, t.exclusive
		FROM equipment e
		JOIN equipment_types t ON t.id = e.type_id
		WHERE e.id = $1`

	var (
		snap   shared.EquipmentSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.TypeID, &snap.Name, &status, &snap.IsActive, &snap.TypeExclusive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "reads.EquipmentByID"),
				errs.ErrEquipmentNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.EquipmentByID")
	}
	snap.Status = equipment.Status(status)
	return &snap, nil
}

func (r *CommandReads) UnitIDsOfType(ctx context.Context, typeID uuid.UUID) ([]uuid.UUID, error) {
	// 非アクティブな個体も対象にする。無効化された個体が既存の予約を
	// 抱えたままプールの照会範囲から抜けると、同じ窓の別個体が素通りする。
	const q = `SELECT id FROM equipment WHERE type_id = $1`

	rows, err := r.db.Query(ctx, q, typeID)
	if err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.UnitIDsOfType")
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.UnitIDsOfType")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.UnitIDsOfType")
	}
	return ids, nil
}

// OccupyingBookings returns the non-terminal bookings of the given units
// whose half-open windows overlap w. start_at < end / end_at > start is the
// same predicate the exclusion constraint enforces, so both layers agree on
// what counts as a collision. exclude skips one booking id so edits never
// collide with themselves.
func (r *CommandReads) OccupyingBookings(ctx context.Context, equipmentIDs []uuid.UUID, w booking.Window, exclude *uuid.UUID) ([]shared.OccupyingBooking, error) {
	const q = `
		SELECT id, equipment_id, start_at, end_at
		FROM bookings
		WHERE equipment_id = ANY($1)
		  AND status IN ('pending', 'approved', 'active')
		  AND start_at < $3
		  AND end_at > $2
		  AND ($4::uuid IS NULL OR id <> $4)
		ORDER BY start_at`

	rows, err := r.db.Query(ctx, q, equipmentIDs, w.Start(), w.End(), exclude)
	if err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.OccupyingBookings")
	}
	defer rows.Close()

	var out []shared.OccupyingBooking
	for rows.Next() {
		var (
			o              shared.OccupyingBooking
			startAt, endAt time.Time
		)
		if err := rows.Scan(&o.BookingID, &o.EquipmentID, &startAt, &endAt); err != nil {
			return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.OccupyingBookings")
		}
		o.Window = booking.ReconstructWindow(startAt, endAt)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.OccupyingBookings")
	}
	return out, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT id, equipment_id, requester_id, start_at, end_at, status, note, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		snap           shared.BookingSnapshot
		startAt, endAt time.Time
		status         string
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.EquipmentID, &snap.RequesterID,
		&startAt, &endAt, &status, &snap.Note,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "reads.BookingByID"),
				errs.ErrBookingNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.BookingByID")
	}
	snap.Window = booking.ReconstructWindow(startAt, endAt)
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `
		SELECT id, email, role, eligibility, is_active
		FROM users
		WHERE id = $1`

	var (
		snap              shared.UserSnapshot
		role, eligibility string
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Email, &role, &eligibility, &snap.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "reads.UserByID"),
				errs.ErrUserNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "reads.UserByID")
	}
	snap.Role = user.Role(role)
	snap.Eligibility = user.Eligibility(eligibility)
	return &snap, nil
}
