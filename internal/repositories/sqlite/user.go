package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
)

// UserRepository implements repositories.UserRepository for SQLite. It is the
// local-development stand-in for the DynamoDB table; the schema is managed by
// the migrations in internal/database.
type UserRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewUserRepository creates a new SQLite user repository
func NewUserRepository(db *sql.DB, logger *logrus.Logger) repositories.UserRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Save writes the full user record with overwrite semantics
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return repositories.ErrInvalidID
	}

	query := `
		INSERT INTO users (user_id, name, email)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET name = excluded.name, email = excluded.email`

	_, err := r.db.ExecContext(ctx, query, user.UserID, user.Name, user.Email)
	if err != nil {
		r.logger.WithError(err).WithField("user_id", user.UserID).Error("insert failed")
		return repositories.NewStorageError("put", user.UserID, err)
	}

	return nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, repositories.ErrInvalidID
	}

	query := `SELECT user_id, name, email FROM users WHERE user_id = ?`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.UserID, &user.Name, &user.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).WithField("user_id", id).Error("select failed")
		return nil, repositories.NewStorageError("get", id, err)
	}

	return user, nil
}

// List returns every record in rowid order, SQLite's natural scan order
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT user_id, name, email FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.WithError(err).Error("scan failed")
		return nil, repositories.NewStorageError("scan", "", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Name, &user.Email); err != nil {
			return nil, repositories.NewStorageError("scan", "", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewStorageError("scan", "", err)
	}

	return users, nil
}

// UpdateAttributes overwrites name and email on the record matching id.
// Unlike DynamoDB, an UPDATE on a missing row is a silent no-op rather than
// an upsert; the backend decides (see the repository contract).
func (r *UserRepository) UpdateAttributes(ctx context.Context, id, name, email string) error {
	if strings.TrimSpace(id) == "" {
		return repositories.ErrInvalidID
	}

	query := `UPDATE users SET name = ?, email = ? WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query, name, email, id)
	if err != nil {
		r.logger.WithError(err).WithField("user_id", id).Error("update failed")
		return repositories.NewStorageError("update", id, err)
	}

	return nil
}

// Delete removes the record matching id; missing ids are a no-op
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return repositories.ErrInvalidID
	}

	query := `DELETE FROM users WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.WithError(err).WithField("user_id", id).Error("delete failed")
		return repositories.NewStorageError("delete", id, err)
	}

	return nil
}
