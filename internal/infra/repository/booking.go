package repository

import (
	"context"
	"errors"

	"equiplend/internal/domain/booking"
	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgExclusionViolation = "23P01"

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create inserts a pending booking. The bookings_no_overlap exclusion
// constraint is the authoritative guard: a concurrent insert for the same
// unit with an overlapping window fails here even if every earlier check
// passed, and surfaces as errs.ErrBookingConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, equipment_id, requester_id, start_at, end_at, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		b.ID(), b.EquipmentID(), b.RequesterID(),
		b.Window().Start(), b.Window().End(),
		b.Status().String(), b.Note(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return uuid.Nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindConflict, "booking.Create"),
				errs.ErrBookingConflict,
			)
		}
		return uuid.Nil, infra.WrapRepoErr(err, infra.KindDBFailure, "booking.Create")
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(err, infra.KindDBFailure, "booking.UpdateStatus")
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(
			infra.WrapRepoErr(errs.New("no rows updated"), infra.KindNotFound, "booking.UpdateStatus"),
			errs.ErrBookingNotFound,
		)
	}
	return nil
}
