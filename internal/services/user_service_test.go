package services

import (
	"context"
	"errors"
	"testing"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories/memory"
)

func stringPtr(s string) *string {
	return &s
}

func TestCreateUser(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserRequest{
		Name:  stringPtr("Ana"),
		Email: stringPtr("ana@x.com"),
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	if user.UserID == "" {
		t.Error("CreateUser() returned empty user_id")
	}
	if user.Name != "Ana" || user.Email != "ana@x.com" {
		t.Errorf("CreateUser() = %+v, want supplied name and email", user)
	}

	retrieved, err := svc.GetUser(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if *retrieved != *user {
		t.Errorf("GetUser() = %+v, want %+v", retrieved, user)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	tests := []struct {
		name string
		req  *CreateUserRequest
	}{
		{"missing email", &CreateUserRequest{Name: stringPtr("Ana")}},
		{"missing name", &CreateUserRequest{Email: stringPtr("ana@x.com")}},
		{"both missing", &CreateUserRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateUser(ctx, tt.req); !errors.Is(err, ErrMissingFields) {
				t.Errorf("CreateUser() error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestCreateUserPresenceOnly(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	// Empty strings count as present; there is no format validation
	user, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Name:  stringPtr(""),
		Email: stringPtr("not-an-email"),
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if user.Email != "not-an-email" {
		t.Errorf("CreateUser() email = %q, want %q", user.Email, "not-an-email")
	}
}

func TestGetUserMissingID(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	if _, err := svc.GetUser(context.Background(), ""); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("GetUser() error = %v, want ErrMissingUserID", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())

	if _, err := svc.GetUser(context.Background(), "missing"); !repositories.IsNotFound(err) {
		t.Errorf("GetUser() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateUser(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserRequest{
		Name:  stringPtr("Ana"),
		Email: stringPtr("ana@x.com"),
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	err = svc.UpdateUser(ctx, user.UserID, &UpdateUserRequest{
		Name:  stringPtr("Ana Maria"),
		Email: stringPtr("ana.maria@x.com"),
	})
	if err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}

	retrieved, err := svc.GetUser(ctx, user.UserID)
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if retrieved.Name != "Ana Maria" || retrieved.Email != "ana.maria@x.com" {
		t.Errorf("After update user = %+v, want new name and email", retrieved)
	}
}

func TestUpdateUserErrors(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	err := svc.UpdateUser(ctx, "", &UpdateUserRequest{Name: stringPtr("a"), Email: stringPtr("b")})
	if !errors.Is(err, ErrMissingUserID) {
		t.Errorf("UpdateUser() error = %v, want ErrMissingUserID", err)
	}

	err = svc.UpdateUser(ctx, "some-id", &UpdateUserRequest{Name: stringPtr("a")})
	if !errors.Is(err, ErrMissingFields) {
		t.Errorf("UpdateUser() error = %v, want ErrMissingFields", err)
	}
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserRequest{
		Name:  stringPtr("Ana"),
		Email: stringPtr("ana@x.com"),
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	if err := svc.DeleteUser(ctx, user.UserID); err != nil {
		t.Fatalf("DeleteUser() failed: %v", err)
	}
	if _, err := svc.GetUser(ctx, user.UserID); !repositories.IsNotFound(err) {
		t.Errorf("GetUser() after delete error = %v, want ErrNotFound", err)
	}

	// Second delete is a no-op, not an error
	if err := svc.DeleteUser(ctx, user.UserID); err != nil {
		t.Errorf("Second DeleteUser() failed: %v", err)
	}

	if err := svc.DeleteUser(ctx, ""); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("DeleteUser() error = %v, want ErrMissingUserID", err)
	}
}
