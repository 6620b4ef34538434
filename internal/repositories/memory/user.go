package memory

import (
	"context"
	"sync"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
)

// UserRepository is an in-memory implementation of repositories.UserRepository
// used by tests and ephemeral local runs. It mirrors DynamoDB's per-key
// semantics: puts overwrite, updates upsert, deletes are no-ops on missing ids.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string // insertion order, stands in for storage scan order
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]models.User),
	}
}

// Save writes the full user record with overwrite semantics
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; !exists {
		r.order = append(r.order, user.UserID)
	}
	r.users[user.UserID] = *user
	return nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

// List returns every record in insertion order
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

// UpdateAttributes overwrites name and email, creating a partial record for
// an unknown id the way DynamoDB's UpdateItem does
func (r *UserRepository) UpdateAttributes(ctx context.Context, id, name, email string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		user = models.User{UserID: id}
		r.order = append(r.order, id)
	}
	user.Name = name
	user.Email = email
	r.users[id] = user
	return nil
}

// Delete removes the record matching id; missing ids are a no-op
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return nil
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
