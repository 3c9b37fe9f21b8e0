package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSoftDeleteAndReactivateUser(t *testing.T) {
	store := setupTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	userID := createTestUser(t, store, "Alice", "alice@example.com")

	if err := svc.SoftDeleteUser(ctx, userID); err != nil {
		t.Fatalf("SoftDeleteUser() error = %v", err)
	}

	_, err := svc.GetActiveUser(ctx, userID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetActiveUser() after delete error = %v, want ErrUserNotFound", err)
	}

	if err := svc.ReactivateUser(ctx, userID); err != nil {
		t.Fatalf("ReactivateUser() error = %v", err)
	}
	if _, err := svc.GetActiveUser(ctx, userID); err != nil {
		t.Errorf("GetActiveUser() after reactivate error = %v", err)
	}

	if err := svc.SoftDeleteUser(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SoftDeleteUser() unknown user error = %v, want ErrUserNotFound", err)
	}
}

func TestSearchUsersByEmail(t *testing.T) {
	store := setupTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	createTestUser(t, store, "Alice", "alice@example.com")
	createTestUser(t, store, "Bob", "bob@example.com")

	users, err := svc.SearchUsers(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("SearchUsers() returned %d users, want 1", len(users))
	}
	if users[0].Email != "alice@example.com" {
		t.Errorf("SearchUsers() email = %q, want alice@example.com", users[0].Email)
	}

	// Unknown email yields an empty result, not an error
	users, err = svc.SearchUsers(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(users) != 0 {
		t.Errorf("SearchUsers() unknown email returned %d users, want 0", len(users))
	}
}

func TestSearchUsersByName(t *testing.T) {
	store := setupTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	createTestUser(t, store, "Alice Johnson", "alice@example.com")
	createTestUser(t, store, "Alicia Keys", "alicia@example.com")
	createTestUser(t, store, "Bob Smith", "bob@example.com")
	deletedID := createTestUser(t, store, "Alice Deleted", "gone@example.com")
	if err := svc.SoftDeleteUser(ctx, deletedID); err != nil {
		t.Fatalf("SoftDeleteUser() error = %v", err)
	}

	users, err := svc.SearchUsers(ctx, "Alic")
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("SearchUsers() returned %d users, want 2 (deactivated accounts excluded)", len(users))
	}
}

func TestUpdateProfile(t *testing.T) {
	store := setupTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	userID := createTestUser(t, store, "Alice", "alice@example.com")

	display := "alice@work.example.com"
	view, err := svc.UpdateProfile(ctx, userID, UpdateProfileInput{Email: &display})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if view.Name != "Alice" {
		t.Errorf("name changed by partial update, got %q", view.Name)
	}
	if view.Email == nil || *view.Email != display {
		t.Errorf("display email not updated, got %v", view.Email)
	}

	view, err = svc.UpdateProfile(ctx, userID, UpdateProfileInput{Name: "Alice J."})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if view.Name != "Alice J." {
		t.Errorf("name = %q, want %q", view.Name, "Alice J.")
	}
	if view.Email == nil || *view.Email != display {
		t.Errorf("display email changed by partial update, got %v", view.Email)
	}

	_, err = svc.UpdateProfile(ctx, uuid.New(), UpdateProfileInput{Name: "Ghost"})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("UpdateProfile() unknown user error = %v, want ErrProfileNotFound", err)
	}
}
