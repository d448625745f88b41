package readstore

import (
	"context"
	"errors"

	"equiplend/internal/domain/user"
	"equiplend/internal/infra"
	"equiplend/internal/infra/db"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/usecase/queries"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) UserByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `
		SELECT id, email, role, eligibility, is_active, last_login_at, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Email, &v.Role, &v.Eligibility, &v.IsActive, &v.LastLoginAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "readstore.UserByID"),
				errs.ErrUserNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.UserByID")
	}
	return &v, nil
}

// CredentialsByEmail is the login lookup. It is the only query that ever
// selects password_hash.
func (r *UserReadStore) CredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	const q = `
		SELECT id, email, role, eligibility, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		c                 shared.UserCredentials
		role, eligibility string
	)
	err := r.db.QueryRow(ctx, q, email).Scan(
		&c.ID, &c.Email, &role, &eligibility, &c.IsActive, &c.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr(err, infra.KindNotFound, "readstore.CredentialsByEmail"),
				errs.ErrUserNotFound,
			)
		}
		return nil, infra.WrapRepoErr(err, infra.KindDBFailure, "readstore.CredentialsByEmail")
	}
	c.Role = user.Role(role)
	c.Eligibility = user.Eligibility(eligibility)
	return &c, nil
}
