package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"equiplend/internal/pkg/errs"
	"equiplend/internal/pkg/jwt"
	"equiplend/internal/pkg/password"
	"equiplend/internal/usecase/shared"
)

type LoginResult struct {
	Token string
	User  shared.UserSnapshot
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommands struct {
	uow         shared.UnitOfWork
	credentials CredentialReader
	tokens      *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, credentials CredentialReader, tokens *jwt.Service) AuthCommands {
	return &authCommands{uow: uow, credentials: credentials, tokens: tokens}
}

// dummyHash keeps the bcrypt cost constant for unknown emails so response
// timing does not reveal which addresses exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (a *authCommands) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	creds, err := a.credentials.CredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			_ = password.ComparePassword(dummyHash, rawPassword)
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to load credentials")
	}

	if err := password.ComparePassword(creds.PasswordHash, rawPassword); err != nil {
		return nil, errs.Mark(errs.New("password mismatch"), errs.ErrInvalidCredentials)
	}
	if !creds.IsActive {
		return nil, errs.Mark(errs.New("account disabled"), errs.ErrInvalidCredentials)
	}

	token, err := a.tokens.GenerateToken(creds.ID, creds.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	// Best effort: a failed bookkeeping write must not block the login.
	if err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, creds.ID)
	}); err != nil {
		slog.Warn("failed to record last login", "user_id", creds.ID, "error", err)
	}

	return &LoginResult{Token: token, User: creds.UserSnapshot}, nil
}
