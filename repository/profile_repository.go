package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project-user-api/models"
)

// UserProfileRepository defines the interface for user profile data access.
type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	FindAllByNameContaining(ctx context.Context, name string) ([]*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) error
	Save(ctx context.Context, profile *models.UserProfile) error
}

type userProfileRepositoryImpl struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new GORM-backed UserProfileRepository.
func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepositoryImpl{db: db}
}

func (r *userProfileRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepositoryImpl) FindAllByNameContaining(ctx context.Context, name string) ([]*models.UserProfile, error) {
	var profiles []*models.UserProfile
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userProfileRepositoryImpl) Create(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *userProfileRepositoryImpl) Save(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// ImageRepository defines the interface for avatar image URL storage.
type ImageRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Image, error)
	Upsert(ctx context.Context, image *models.Image) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type imageRepositoryImpl struct {
	db *gorm.DB
}

// NewImageRepository creates a new GORM-backed ImageRepository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepositoryImpl{db: db}
}

func (r *imageRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepositoryImpl) Upsert(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"image_url"}),
		}).
		Create(image).Error
}

func (r *imageRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Image{}).Error
}
