package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID          uuid.UUID
	Email       string
	Role        string
	Eligibility string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

type UserQueries interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}
