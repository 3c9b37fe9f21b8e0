package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "alice@example.com", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("FindByID() email = %q, want %q", got.Email, "alice@example.com")
	}

	_, err = repo.FindByID(ctx, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID() unknown ID error = %v, want ErrRecordNotFound", err)
	}
}

func TestUserRepository_FindActiveByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "bob@example.com", IsActive: false}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := repo.FindActiveByID(ctx, user.UserID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindActiveByID() inactive user error = %v, want ErrRecordNotFound", err)
	}
}

func TestUserRepository_SoftDeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "carol@example.com", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := repo.SoftDeleteByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("SoftDeleteByID() error = %v", err)
	}
	if !ok {
		t.Error("SoftDeleteByID() = false, want true")
	}

	got, err := repo.FindByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("FindByID() after soft delete error = %v", err)
	}
	if got.IsActive {
		t.Error("user still active after soft delete")
	}
	if got.DeletedAt == nil {
		t.Error("deleted_at not stamped by soft delete")
	}

	// Second delete matches no active row
	ok, err = repo.SoftDeleteByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("SoftDeleteByID() second call error = %v", err)
	}
	if ok {
		t.Error("SoftDeleteByID() second call = true, want false")
	}
}

func TestUserRepository_ReactivateByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "dave@example.com", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Active accounts cannot be reactivated
	ok, err := repo.ReactivateByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("ReactivateByID() error = %v", err)
	}
	if ok {
		t.Error("ReactivateByID() on active user = true, want false")
	}

	if _, err := repo.SoftDeleteByID(ctx, user.UserID); err != nil {
		t.Fatalf("SoftDeleteByID() error = %v", err)
	}

	ok, err = repo.ReactivateByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("ReactivateByID() error = %v", err)
	}
	if !ok {
		t.Error("ReactivateByID() = false, want true")
	}

	got, err := repo.FindActiveByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("FindActiveByID() after reactivate error = %v", err)
	}
	if got.DeletedAt != nil {
		t.Error("deleted_at not cleared by reactivate")
	}
}

func TestUserRepository_FindAllByIDIn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u1 := &models.User{Email: "u1@example.com", IsActive: true}
	u2 := &models.User{Email: "u2@example.com", IsActive: true}
	u3 := &models.User{Email: "u3@example.com", IsActive: true}
	for _, u := range []*models.User{u1, u2, u3} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	users, err := repo.FindAllByIDIn(ctx, []uuid.UUID{u1.UserID, u3.UserID})
	if err != nil {
		t.Fatalf("FindAllByIDIn() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("FindAllByIDIn() returned %d users, want 2", len(users))
	}
}
