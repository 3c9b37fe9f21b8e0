package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

func TestWorkspaceJoinRequestRepository_FindPendingByWorkspaceAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceJoinRequestRepository(db)
	ctx := context.Background()

	workspaceID := uuid.New()
	userID := uuid.New()
	request := &models.WorkspaceJoinRequest{
		WorkspaceID: workspaceID,
		UserID:      userID,
	}
	if err := repo.Create(ctx, request); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if request.Status != models.JoinRequestPending {
		t.Errorf("new request status = %v, want PENDING", request.Status)
	}

	got, err := repo.FindPendingByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		t.Fatalf("FindPendingByWorkspaceAndUser() error = %v", err)
	}
	if got.ID != request.ID {
		t.Errorf("FindPendingByWorkspaceAndUser() id = %v, want %v", got.ID, request.ID)
	}

	// A decided request is no longer pending
	request.Status = models.JoinRequestRejected
	if err := repo.Save(ctx, request); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_, err = repo.FindPendingByWorkspaceAndUser(ctx, workspaceID, userID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindPendingByWorkspaceAndUser() after decision error = %v, want ErrRecordNotFound", err)
	}
}

func TestWorkspaceJoinRequestRepository_FindByWorkspace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkspaceJoinRequestRepository(db)
	ctx := context.Background()

	workspaceID := uuid.New()
	pending := &models.WorkspaceJoinRequest{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Status:      models.JoinRequestPending,
	}
	approved := &models.WorkspaceJoinRequest{
		WorkspaceID: workspaceID,
		UserID:      uuid.New(),
		Status:      models.JoinRequestApproved,
	}
	other := &models.WorkspaceJoinRequest{
		WorkspaceID: uuid.New(),
		UserID:      uuid.New(),
		Status:      models.JoinRequestPending,
	}
	for _, r := range []*models.WorkspaceJoinRequest{pending, approved, other} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := repo.FindByWorkspace(ctx, workspaceID, nil)
	if err != nil {
		t.Fatalf("FindByWorkspace() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("FindByWorkspace(nil) returned %d requests, want 2", len(all))
	}

	status := models.JoinRequestApproved
	filtered, err := repo.FindByWorkspace(ctx, workspaceID, &status)
	if err != nil {
		t.Fatalf("FindByWorkspace() error = %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("FindByWorkspace(APPROVED) returned %d requests, want 1", len(filtered))
	}
	if filtered[0].ID != approved.ID {
		t.Errorf("FindByWorkspace(APPROVED) id = %v, want %v", filtered[0].ID, approved.ID)
	}
}
