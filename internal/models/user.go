package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// User represents a user record in the system
type User struct {
	UserID string `json:"user_id" dynamodbav:"user_id" db:"user_id" validate:"required"`
	Name   string `json:"name" dynamodbav:"name" db:"name"`
	Email  string `json:"email" dynamodbav:"email" db:"email"`
}

// NewUser creates a new user with a server-generated ID. The ID is assigned
// exactly once here and is immutable afterwards.
func NewUser(name, email string) *User {
	return &User{
		UserID: uuid.New().String(),
		Name:   name,
		Email:  email,
	}
}

// Validate validates the user data
func (u *User) Validate() error {
	if strings.TrimSpace(u.UserID) == "" {
		return fmt.Errorf("user ID is required")
	}
	return nil
}
