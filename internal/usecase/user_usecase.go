// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
// New accounts always receive the default role.
type SignUpInput struct {
	Email    string
	Password string
	Username string
	Country  string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Username *string
	Country  *string
	RoleName *entity.RoleName
}

// --- Output DTOs ---

// TokenOutput is a signed session token and its expiry.
type TokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

// SignInOutput returns the issued token and the signed-in user.
type SignInOutput struct {
	TokenOutput
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.User, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	RefreshToken(ctx context.Context, token string) (*TokenOutput, error)

	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// UpdateUser applies input to userID. Only a privileged actor may change roles.
	UpdateUser(ctx context.Context, actor *entity.ResolvedIdentity, userID uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// UserOwner resolves the owner of a user record, which is the user itself.
	// It is used as the ownership lookup for admin-or-owner gates.
	UserOwner(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}
