package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

func TestWorkspaceMemberRepository_FindOwnerByWorkspace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceMemberRepository(db)
	ctx := context.Background()

	workspaceID := uuid.New()
	owner := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Role:        models.RoleOwner,
		IsActive:    true,
	}
	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Role:        models.RoleMember,
		IsActive:    true,
	}
	for _, m := range []*models.WorkspaceMember{owner, member} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repo.FindOwnerByWorkspace(ctx, workspaceID)
	if err != nil {
		t.Fatalf("FindOwnerByWorkspace() error = %v", err)
	}
	if got.UserID != owner.UserID {
		t.Errorf("FindOwnerByWorkspace() user = %v, want %v", got.UserID, owner.UserID)
	}

	_, err = repo.FindOwnerByWorkspace(ctx, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindOwnerByWorkspace() unknown workspace error = %v, want ErrRecordNotFound", err)
	}
}

func TestWorkspaceMemberRepository_FindAllByWorkspaceIncludesInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceMemberRepository(db)
	ctx := context.Background()

	workspaceID := uuid.New()
	active := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Role:        models.RoleOwner,
		IsActive:    true,
	}
	inactive := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Role:        models.RoleMember,
		IsActive:    false,
	}
	for _, m := range []*models.WorkspaceMember{active, inactive} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	members, err := repo.FindAllByWorkspace(ctx, workspaceID)
	if err != nil {
		t.Fatalf("FindAllByWorkspace() error = %v", err)
	}
	if len(members) != 2 {
		t.Errorf("FindAllByWorkspace() returned %d members, want 2", len(members))
	}
}

func TestWorkspaceMemberRepository_ExistsActiveByWorkspaceAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceMemberRepository(db)
	ctx := context.Background()

	workspaceID := uuid.New()
	userID := uuid.New()
	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        models.RoleMember,
		IsActive:    true,
	}
	if err := repo.Create(ctx, member); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := repo.ExistsActiveByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		t.Fatalf("ExistsActiveByWorkspaceAndUser() error = %v", err)
	}
	if !ok {
		t.Error("ExistsActiveByWorkspaceAndUser() = false, want true")
	}

	member.IsActive = false
	if err := repo.Save(ctx, member); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	ok, err = repo.ExistsActiveByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		t.Fatalf("ExistsActiveByWorkspaceAndUser() error = %v", err)
	}
	if ok {
		t.Error("ExistsActiveByWorkspaceAndUser() after deactivation = true, want false")
	}
}

func TestWorkspaceMemberRepository_ClearDefaultForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceMemberRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := &models.WorkspaceMember{
		WorkspaceID: uuid.New(),
		UserID:      userID,
		Role:        models.RoleOwner,
		IsDefault:   true,
		IsActive:    true,
	}
	second := &models.WorkspaceMember{
		WorkspaceID: uuid.New(),
		UserID:      userID,
		Role:        models.RoleMember,
		IsActive:    true,
	}
	otherUser := &models.WorkspaceMember{
		WorkspaceID: uuid.New(),
		UserID:      uuid.New(),
		Role:        models.RoleOwner,
		IsDefault:   true,
		IsActive:    true,
	}
	for _, m := range []*models.WorkspaceMember{first, second, otherUser} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	if err := repo.ClearDefaultForUser(ctx, userID); err != nil {
		t.Fatalf("ClearDefaultForUser() error = %v", err)
	}

	var count int64
	db.Model(&models.WorkspaceMember{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&count)
	if count != 0 {
		t.Errorf("user still has %d default memberships, want 0", count)
	}

	// Other users' defaults are untouched
	db.Model(&models.WorkspaceMember{}).
		Where("user_id = ? AND is_default = ?", otherUser.UserID, true).
		Count(&count)
	if count != 1 {
		t.Errorf("other user's default membership count = %d, want 1", count)
	}
}
