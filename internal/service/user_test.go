package service

import (
	"context"
	"errors"
	"testing"

	"auralis/internal/domain"
	"auralis/internal/domain/services"
)

func TestCreateUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user := mustCreateUser(t, f, " auth0|5f1c9a ")
	if user.AuthProviderUserID != "auth0|5f1c9a" {
		t.Errorf("AuthProviderUserID = %q, want trimmed", user.AuthProviderUserID)
	}

	got, err := f.users.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("GetUser().ID = %s, want %s", got.ID, user.ID)
	}

	_, err = f.users.CreateUser(ctx, &services.CreateUserRequest{AuthProviderUserID: "auth0|5f1c9a"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate: error = %v, want ErrConflict", err)
	}
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) || conflict.ResourceID != user.ID {
		t.Errorf("conflict = %+v, want resource id %s", conflict, user.ID)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	f := newFixture()
	for _, id := range []string{"", "   "} {
		if _, err := f.users.CreateUser(context.Background(), &services.CreateUserRequest{AuthProviderUserID: id}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("CreateUser(%q) error = %v, want ErrValidation", id, err)
		}
	}
}

func TestListAccessibleProjects_UnknownUser(t *testing.T) {
	f := newFixture()
	_, err := f.users.ListAccessibleProjects(context.Background(), "00000000-0000-4000-8000-000000000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
