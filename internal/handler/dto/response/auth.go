package response

import (
	"time"

	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
		User: UserResponse{
			ID:       r.UserID,
			Email:    r.Email,
			FullName: r.FullName,
			Role:     r.Role.String(),
		},
	}
}

func FromUserProfile(v *queries.UserProfileView) *UserResponse {
	createdAt := v.CreatedAt
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		FullName:  v.FullName,
		Role:      v.Role,
		CreatedAt: &createdAt,
	}
}
