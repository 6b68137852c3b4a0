package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/entity"
	"github.com/vibast-solutions/ms-go-tasks/app/service"

	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, repo *fakeUserRepo, password string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Name:         "Jane Doe",
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: hashPassword(t, password),
		Gender:       "F",
		Confirmed:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserService_OneNotFound(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	_, err := svc.One(context.Background(), 42)
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdatePartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)
	user := seedUser(t, repo, "password123")

	name := "Jane Q. Doe"
	updated, err := svc.Update(context.Background(), user.ID, &dtohttp.UpdateUserRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Jane Q. Doe" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
	if updated.Username != user.Username {
		t.Errorf("expected username unchanged, got %s", updated.Username)
	}
	if updated.Gender != user.Gender {
		t.Errorf("expected gender unchanged, got %s", updated.Gender)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)
	user := seedUser(t, repo, "old-password")

	if err := svc.UpdatePassword(context.Background(), user.ID, "old-password", "new-password"); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")); err != nil {
		t.Errorf("stored hash does not match the new password: %v", err)
	}
}

func TestUserService_UpdatePasswordMismatch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)
	user := seedUser(t, repo, "old-password")

	err := svc.UpdatePassword(context.Background(), user.ID, "wrong-password", "new-password")
	if !errors.Is(err, service.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestUserService_Destroy(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)
	user := seedUser(t, repo, "password123")

	if err := svc.Destroy(context.Background(), user.ID); err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if _, err := svc.One(context.Background(), user.ID); !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after destroy, got %v", err)
	}
}
