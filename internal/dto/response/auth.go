package response

import (
	"time"

	"glassfinder/internal/data/entity"
)

// AuthResponse is the public identity plus bearer token returned at
// sign-in. Never carries the password hash or verification code.
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Verified bool             `json:"verified"`
	Linked   bool             `json:"linked"`
	Type     *entity.LinkType `json:"type"`
	Role     entity.UserRole  `json:"role"`
}

func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Verified: user.Verified,
		Linked:   user.Linked,
		Type:     user.Type,
		Role:     user.Role,
	}
}
