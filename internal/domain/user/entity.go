package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Carries the eligibility state the booking validator reads.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	eligibility  Eligibility
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers an account in pending eligibility; an admin approves it
// before the account may book.
func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		eligibility:  EligibilityPending,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	eligibility Eligibility,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		eligibility:  eligibility,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) MayBook() bool {
	return u.isActive && u.eligibility.MayBook()
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) Eligibility() Eligibility { return u.eligibility }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
