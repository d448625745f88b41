package readstore

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultListLimit = 50

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
	b.id, b.equipment_id, e.name, b.requester_id, u.email,
	b.start_at, b.end_at, b.status, b.note, b.created_at, b.updated_at`

func (r *BookingReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN equipment e ON e.id = b.equipment_id
		JOIN users u ON u.id = b.requester_id
		WHERE b.id = $1`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.EquipmentID, &v.EquipmentName, &v.RequesterID, &v.RequesterEmail,
		&v.StartAt, &v.EndAt, &v.Status, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "readstore.BookingByID"),
				errs.ErrBookingNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.BookingByID")
	}
	return &v, nil
}

// ListBookings builds the WHERE clause from the filter. Arguments are always
// bound, never concatenated.
func (r *BookingReadStore) ListBookings(ctx context.Context, f queries.ListBookingsFilter) ([]queries.BookingView, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN equipment e ON e.id = b.equipment_id
		JOIN users u ON u.id = b.requester_id
		WHERE 1=1`)

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.EquipmentID != nil {
		sb.WriteString(" AND b.equipment_id = " + arg(*f.EquipmentID))
	}
	if f.RequesterID != nil {
		sb.WriteString(" AND b.requester_id = " + arg(*f.RequesterID))
	}
	if len(f.Statuses) > 0 {
		sb.WriteString(" AND b.status = ANY(" + arg(f.Statuses) + ")")
	}
	if f.From != nil {
		sb.WriteString(" AND b.end_at > " + arg(*f.From))
	}
	if f.To != nil {
		sb.WriteString(" AND b.start_at < " + arg(*f.To))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	sb.WriteString(" ORDER BY b.start_at DESC")
	sb.WriteString(" LIMIT " + arg(limit))
	if f.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(f.Offset))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListBookings")
	}
	defer rows.Close()

	var out []queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.EquipmentID, &v.EquipmentName, &v.RequesterID, &v.RequesterEmail,
			&v.StartAt, &v.EndAt, &v.Status, &v.Note, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListBookings")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListBookings")
	}
	return out, nil
}
