package user

import (
	"context"
	"fmt"
	"time"

	"tripwise/models"
	"tripwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 72 * time.Hour

// Register creates an account and returns a fresh token.
func (s *DefaultUserService) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{ID: account.ID, Token: token, Username: account.Username, Email: account.Email}, nil
}

// Authenticate verifies credentials and returns a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{ID: account.ID, Token: token, Username: account.Username, Email: account.Email}, nil
}

// GetByID returns the public profile for an account.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*Profile, error) {
	account, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("user not found")
	}
	return &Profile{ID: account.ID, Username: account.Username, Email: account.Email}, nil
}

// SignOut revokes the presented token.
func (s *DefaultUserService) SignOut(ctx context.Context, token string) error {
	if err := utils.RevokeToken(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
