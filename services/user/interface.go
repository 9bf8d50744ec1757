package user

import (
	"context"

	userRepo "tripwise/database/repository/user"
)

// UserService is the identity collaborator. Absence of identity is a normal
// state for itinerary generation; it is only a hard precondition for booking
// persistence, enforced at the booking boundary.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*Profile, error)
	SignOut(ctx context.Context, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID and a fresh token.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Profile is the public view of an account.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
