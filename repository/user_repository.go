package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-user-api/models"
)

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAllByIDIn(ctx context.Context, ids []uuid.UUID) ([]*models.User, error)
	FindAllActive(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	SoftDeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ReactivateByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", id, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepositoryImpl) FindAllByIDIn(ctx context.Context, ids []uuid.UUID) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepositoryImpl) FindAllActive(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepositoryImpl) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// SoftDeleteByID flips is_active off and stamps deleted_at in one update.
// Returns false when no row matched.
func (r *userRepositoryImpl) SoftDeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	return res.RowsAffected > 0, res.Error
}

// ReactivateByID restores a soft-deleted account. Returns false when no row matched.
func (r *userRepositoryImpl) ReactivateByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ? AND is_active = ?", id, false).
		Updates(map[string]interface{}{
			"is_active":  true,
			"deleted_at": nil,
		})
	return res.RowsAffected > 0, res.Error
}
