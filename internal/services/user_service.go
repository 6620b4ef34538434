package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
)

// ErrMissingFields is returned when a create or update payload lacks the
// name or email key
var ErrMissingFields = errors.New("missing required fields: name, email")

// ErrMissingUserID is returned when an operation requires a user ID and
// none was supplied
var ErrMissingUserID = errors.New("missing user ID")

// userService implements the UserService interface
type userService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validate
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		validator: validator.New(),
	}
}

// CreateUser generates a new user ID and writes the full record. Storage
// errors pass through untouched so callers can translate them.
func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("create user request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, ErrMissingFields
	}

	user := models.NewUser(*req.Name, *req.Email)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, ErrMissingUserID
	}

	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves every user record
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser overwrites name and email on the record matching id. There is
// no existence check; the backend decides what an update on an unknown id
// does.
func (s *userService) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) error {
	if id == "" {
		return ErrMissingUserID
	}

	if req == nil {
		return fmt.Errorf("update user request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return ErrMissingFields
	}

	return s.userRepo.UpdateAttributes(ctx, id, *req.Name, *req.Email)
}

// DeleteUser removes a user record unconditionally
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingUserID
	}

	return s.userRepo.Delete(ctx, id)
}
