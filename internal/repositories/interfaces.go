package repositories

import (
	"context"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
)

// UserRepository defines the storage operations for user records. The backend
// table is keyed by user_id; every operation is a single independent call with
// whatever atomicity the backend natively provides.
type UserRepository interface {
	// Save writes the full user record with overwrite semantics.
	Save(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by its ID. Returns ErrNotFound if the record
	// does not exist.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List retrieves every user record in storage order. An empty table yields
	// an empty (non-nil) slice.
	List(ctx context.Context) ([]models.User, error)

	// UpdateAttributes overwrites name and email on the record matching id.
	// No existence check: backends with create-if-absent semantics will
	// silently create a partial record for an unknown id.
	UpdateAttributes(ctx context.Context, id, name, email string) error

	// Delete removes the record matching id. Deleting a non-existent id is
	// not an error.
	Delete(ctx context.Context, id string) error
}
