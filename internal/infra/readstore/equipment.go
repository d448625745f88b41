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

type EquipmentReadStore struct {
	db db.DBTX
}

func NewEquipmentReadStore(dbtx db.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{db: dbtx}
}

func (r *EquipmentReadStore) EquipmentByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	const q = `
		SELECT e.id, e.type_id, t.name, e.name, e.status, e.is_active, t.exclusive
		FROM equipment e
		JOIN equipment_types t ON t.id = e.type_id
		WHERE e.id = $1`

	var v queries.EquipmentView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.TypeID, &v.TypeName, &v.Name, &v.Status, &v.IsActive, &v.TypeExclusive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "readstore.EquipmentByID"),
				errs.ErrEquipmentNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.EquipmentByID")
	}
	return &v, nil
}

func (r *EquipmentReadStore) ListEquipment(ctx context.Context, f queries.ListEquipmentFilter) ([]queries.EquipmentView, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`
		SELECT e.id, e.type_id, t.name, e.name, e.status, e.is_active, t.exclusive
		FROM equipment e
		JOIN equipment_types t ON t.id = e.type_id
		WHERE 1=1`)

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.TypeID != nil {
		sb.WriteString(" AND e.type_id = " + arg(*f.TypeID))
	}
	if f.Status != nil {
		sb.WriteString(" AND e.status = " + arg(*f.Status))
	}
	if f.ActiveOnly {
		sb.WriteString(" AND e.is_active")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	sb.WriteString(" ORDER BY t.name, e.name")
	sb.WriteString(" LIMIT " + arg(limit))
	if f.Offset > 0 {
		sb.WriteString(" OFFSET " + arg(f.Offset))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipment")
	}
	defer rows.Close()

	var out []queries.EquipmentView
	for rows.Next() {
		var v queries.EquipmentView
		if err := rows.Scan(
			&v.ID, &v.TypeID, &v.TypeName, &v.Name, &v.Status, &v.IsActive, &v.TypeExclusive,
		); err != nil {
			return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipment")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipment")
	}
	return out, nil
}

func (r *EquipmentReadStore) ListEquipmentTypes(ctx context.Context) ([]queries.EquipmentTypeView, error) {
	const q = `
		SELECT t.id, t.name, t.exclusive, count(e.id)
		FROM equipment_types t
		LEFT JOIN equipment e ON e.type_id = t.id AND e.is_active
		GROUP BY t.id, t.name, t.exclusive
		ORDER BY t.name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipmentTypes")
	}
	defer rows.Close()

	var out []queries.EquipmentTypeView
	for rows.Next() {
		var v queries.EquipmentTypeView
		if err := rows.Scan(&v.ID, &v.Name, &v.Exclusive, &v.UnitCount); err != nil {
			return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipmentTypes")
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.ListEquipmentTypes")
	}
	return out, nil
}
