package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

// WorkspaceMemberRepository defines the interface for workspace membership data access.
type WorkspaceMemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.WorkspaceMember, error)
	FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error)
	FindActiveByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error)
	FindOwnerByWorkspace(ctx context.Context, workspaceID uuid.UUID) (*models.WorkspaceMember, error)
	FindAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.WorkspaceMember, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.WorkspaceMember, error)
	ExistsActiveByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, member *models.WorkspaceMember) error
	Save(ctx context.Context, member *models.WorkspaceMember) error
	ClearDefaultForUser(ctx context.Context, userID uuid.UUID) error
}

type workspaceMemberRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceMemberRepository creates a new GORM-backed WorkspaceMemberRepository.
func NewWorkspaceMemberRepository(db *gorm.DB) WorkspaceMemberRepository {
	return &workspaceMemberRepositoryImpl{db: db}
}

func (r *workspaceMemberRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkspaceMember, error) {
	var member models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *workspaceMemberRepositoryImpl) FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error) {
	var member models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *workspaceMemberRepositoryImpl) FindActiveByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error) {
	var member models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ? AND is_active = ?", workspaceID, userID, true).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindOwnerByWorkspace resolves the single active OWNER membership of a workspace.
func (r *workspaceMemberRepositoryImpl) FindOwnerByWorkspace(ctx context.Context, workspaceID uuid.UUID) (*models.WorkspaceMember, error) {
	var member models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND role = ? AND is_active = ?", workspaceID, models.RoleOwner, true).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindAllByWorkspace returns every membership row of a workspace,
// inactive ones included.
func (r *workspaceMemberRepositoryImpl) FindAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.WorkspaceMember, error) {
	var members []*models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *workspaceMemberRepositoryImpl) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.WorkspaceMember, error) {
	var members []*models.WorkspaceMember
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *workspaceMemberRepositoryImpl) ExistsActiveByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ? AND is_active = ?", workspaceID, userID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *workspaceMemberRepositoryImpl) Create(ctx context.Context, member *models.WorkspaceMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *workspaceMemberRepositoryImpl) Save(ctx context.Context, member *models.WorkspaceMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// ClearDefaultForUser unsets is_default on all of a user's active memberships.
// Callers pair this with a single set inside one transaction so readers never
// observe two defaults.
func (r *workspaceMemberRepositoryImpl) ClearDefaultForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.WorkspaceMember{}).
		Where("user_id = ? AND is_active = ? AND is_default = ?", userID, true, true).
		Update("is_default", false).Error
}
