package usecase

import (
	"context"

	"equiplend/internal/domain/user"
	"equiplend/internal/pkg/errs"
	"equiplend/internal/pkg/jwt"
	"equiplend/internal/usecase/queries"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

// Principal is the authenticated caller attached to the request context by
// the auth middleware.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	// Validate checks the signature and expiry, then confirms the subject
	// still exists and is active. A token for a deactivated account is
	// rejected even if it has not expired yet.
	Validate(ctx context.Context, token string) (*Principal, error)
}

type tokenValidator struct {
	tokens *jwt.Service
	users  queries.UserQueries
}

func NewTokenValidator(tokens *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidator{tokens: tokens, users: users}
}

func (v *tokenValidator) Validate(ctx context.Context, token string) (*Principal, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.Wrap(err, "token validation failed")
	}

	snap, err := v.users.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Wrap(err, "token subject lookup failed")
	}
	if !snap.IsActive {
		return nil, errs.Mark(errs.New("account disabled"), errs.ErrInvalidCredentials)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Wrap(err, "token carries an unknown role")
	}

	return &Principal{UserID: snap.ID, Role: role}, nil
}

// Snapshot adapts the principal into the actor shape the command layer
// checks roles against.
func (p *Principal) Snapshot() shared.UserSnapshot {
	return shared.UserSnapshot{ID: p.UserID, Role: p.Role}
}
