package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

// WorkspaceRepository defines the interface for workspace data access.
type WorkspaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	Create(ctx context.Context, workspace *models.Workspace) error
	Save(ctx context.Context, workspace *models.Workspace) error
	SoftDeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ReactivateByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindAllActive(ctx context.Context) ([]*models.Workspace, error)
	FindActiveByName(ctx context.Context, name string) ([]*models.Workspace, error)
}

type workspaceRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new GORM-backed WorkspaceRepository.
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: db}
}

func (r *workspaceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", id).
		First(&workspace).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *workspaceRepositoryImpl) Create(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

func (r *workspaceRepositoryImpl) Save(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Save(workspace).Error
}

// SoftDeleteByID deactivates the workspace and stamps deleted_at.
// Memberships and join requests are not cascaded.
func (r *workspaceRepositoryImpl) SoftDeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Where("workspace_id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	return res.RowsAffected > 0, res.Error
}

func (r *workspaceRepositoryImpl) ReactivateByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Where("workspace_id = ? AND is_active = ?", id, false).
		Updates(map[string]interface{}{
			"is_active":  true,
			"deleted_at": nil,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *workspaceRepositoryImpl) FindAllActive(ctx context.Context) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepositoryImpl) FindActiveByName(ctx context.Context, name string) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := r.db.WithContext(ctx).
		Where("name LIKE ? AND is_active = ?", "%"+name+"%", true).
		Order("created_at DESC").
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}
