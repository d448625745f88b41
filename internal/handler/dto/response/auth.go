package response

import (
	"time"

	"equiplend/internal/usecase/queries"
	"equiplend/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Eligibility string     `json:"eligibility,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func FromUserSnapshot(s shared.UserSnapshot) *UserResponse {
	return &UserResponse{
		ID:          s.ID,
		Email:       s.Email,
		Role:        string(s.Role),
		Eligibility: string(s.Eligibility),
		IsActive:    s.IsActive,
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		Role:        v.Role,
		Eligibility: v.Eligibility,
		IsActive:    v.IsActive,
		LastLoginAt: v.LastLoginAt,
	}
}
