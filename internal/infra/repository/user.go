package repository

import (
	"context"

	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const q = `
		UPDATE users
		SET last_login_at = now(), updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return infra.WrapRepoErr(err, infra.KindDBFailure, "user.UpdateLastLogin")
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(
			infra.WrapRepoErr(errs.New("no rows updated"), infra.KindNotFound, "user.UpdateLastLogin"),
			errs.ErrUserNotFound,
		)
	}
	return nil
}
