package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/models"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE users (
			user_id TEXT PRIMARY KEY,
			name    TEXT NOT NULL DEFAULT '',
			email   TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		t.Fatalf("Failed to create users table: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func newTestRepo(t *testing.T) (repositories.UserRepository, func()) {
	db, cleanup := setupTestDB(t)

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	return NewUserRepository(db, logger), cleanup
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	user := models.NewUser("Ana", "ana@x.com")
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if *retrieved != *user {
		t.Errorf("Retrieved user = %+v, want %+v", retrieved, user)
	}
}

func TestUserRepository_SaveOverwrites(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	user := models.NewUser("Ana", "ana@x.com")
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	user.Email = "new@x.com"
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Second Save() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if retrieved.Email != "new@x.com" {
		t.Errorf("Retrieved email = %q, want %q", retrieved.Email, "new@x.com")
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()

	_, err := repo.GetByID(context.Background(), "missing")
	if !repositories.IsNotFound(err) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("List on empty table = %v, want empty non-nil slice", users)
	}

	repo.Save(ctx, models.NewUser("Ana", "ana@x.com"))
	repo.Save(ctx, models.NewUser("Bob", "bob@x.com"))

	users, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("List returned %d users, want 2", len(users))
	}
}

func TestUserRepository_UpdateAttributes(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	user := models.NewUser("Ana", "ana@x.com")
	repo.Save(ctx, user)

	if err := repo.UpdateAttributes(ctx, user.UserID, "Ana Maria", "ana.maria@x.com"); err != nil {
		t.Fatalf("UpdateAttributes() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if retrieved.Name != "Ana Maria" || retrieved.Email != "ana.maria@x.com" {
		t.Errorf("Updated user = %+v, want new name and email", retrieved)
	}
}

func TestUserRepository_UpdateMissingIsNoop(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	// SQL UPDATE on a missing row affects nothing; no partial record appears
	if err := repo.UpdateAttributes(ctx, "ghost", "Ana", "ana@x.com"); err != nil {
		t.Fatalf("UpdateAttributes() failed: %v", err)
	}

	if _, err := repo.GetByID(ctx, "ghost"); !repositories.IsNotFound(err) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	user := models.NewUser("Ana", "ana@x.com")
	repo.Save(ctx, user)

	if err := repo.Delete(ctx, user.UserID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, user.UserID); !repositories.IsNotFound(err) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting twice is not an error
	if err := repo.Delete(ctx, user.UserID); err != nil {
		t.Errorf("Second Delete() failed: %v", err)
	}
}
