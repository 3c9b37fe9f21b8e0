package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-user-api/models"
	"project-user-api/repository"
)

func setupTestStore(t *testing.T) *repository.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Image{},
		&models.Workspace{},
		&models.WorkspaceMember{},
		&models.WorkspaceJoinRequest{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return repository.NewStore(db)
}

// createTestUser inserts an active user with a profile and returns its ID.
func createTestUser(t *testing.T, store *repository.Store, name, email string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Email: email, IsActive: true}
	if err := store.Users.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	profile := &models.UserProfile{UserID: user.UserID, Name: name}
	if err := store.Profiles.Create(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return user.UserID
}

// createTestWorkspace creates a workspace through the service so the OWNER
// membership invariant holds, and returns the workspace ID.
func createTestWorkspace(t *testing.T, svc *WorkspaceService, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	view, err := svc.CreateWorkspace(context.Background(), CreateWorkspaceInput{Name: name}, ownerID)
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	return view.WorkspaceID
}

// addMember inserts an active membership row directly.
func addMember(t *testing.T, store *repository.Store, workspaceID, userID uuid.UUID, role models.WorkspaceRole) uuid.UUID {
	t.Helper()

	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		IsActive:    true,
	}
	if err := store.Members.Create(context.Background(), member); err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	return member.ID
}
