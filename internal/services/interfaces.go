package services

import (
	"context"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
)

// CreateUserRequest carries the payload for creating a user. Pointer fields
// distinguish an absent key from an empty value: the contract only checks
// presence, never format.
type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

// UpdateUserRequest carries the payload for updating a user
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

// UserService defines business operations for user management
type UserService interface {
	// CreateUser generates a new user ID and writes the full record
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*models.User, error)

	// ListUsers retrieves every user record
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser overwrites name and email on an existing record
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) error

	// DeleteUser removes a user record
	DeleteUser(ctx context.Context, id string) error
}
