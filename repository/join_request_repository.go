package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

// WorkspaceJoinRequestRepository defines the interface for join request data access.
type WorkspaceJoinRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.WorkspaceJoinRequest, error)
	FindPendingByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceJoinRequest, error)
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID, status *models.JoinRequestStatus) ([]*models.WorkspaceJoinRequest, error)
	Create(ctx context.Context, request *models.WorkspaceJoinRequest) error
	Save(ctx context.Context, request *models.WorkspaceJoinRequest) error
}

type workspaceJoinRequestRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceJoinRequestRepository creates a new GORM-backed WorkspaceJoinRequestRepository.
func NewWorkspaceJoinRequestRepository(db *gorm.DB) WorkspaceJoinRequestRepository {
	return &workspaceJoinRequestRepositoryImpl{db: db}
}

func (r *workspaceJoinRequestRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkspaceJoinRequest, error) {
	var request models.WorkspaceJoinRequest
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindPendingByWorkspaceAndUser returns the unique PENDING request for the pair,
// or gorm.ErrRecordNotFound if none exists.
func (r *workspaceJoinRequestRepositoryImpl) FindPendingByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceJoinRequest, error) {
	var request models.WorkspaceJoinRequest
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ? AND status = ?", workspaceID, userID, models.JoinRequestPending).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByWorkspace lists join requests for a workspace, optionally filtered by status.
func (r *workspaceJoinRequestRepositoryImpl) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID, status *models.JoinRequestStatus) ([]*models.WorkspaceJoinRequest, error) {
	var requests []*models.WorkspaceJoinRequest
	query := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Order("requested_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *workspaceJoinRequestRepositoryImpl) Create(ctx context.Context, request *models.WorkspaceJoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *workspaceJoinRequestRepositoryImpl) Save(ctx context.Context, request *models.WorkspaceJoinRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
