package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"project-user-api/models"
	"project-user-api/repository"
)

// DefaultProfileImageURL is served when a user has no uploaded avatar.
const DefaultProfileImageURL = "/images/default-profile.png"

// ImageService stores and resolves avatar image URLs per user.
type ImageService struct {
	store *repository.Store
}

// NewImageService creates an ImageService on top of the given store.
func NewImageService(store *repository.Store) *ImageService {
	return &ImageService{store: store}
}

// SaveImageURL upserts the avatar URL for an existing user.
func (s *ImageService) SaveImageURL(ctx context.Context, userID uuid.UUID, imageURL string) (string, error) {
	logrus.WithField("user_id", userID).Info("Saving profile image URL")

	if err := s.requireUser(ctx, userID); err != nil {
		return "", err
	}
	if err := s.store.Images.Upsert(ctx, &models.Image{UserID: userID, ImageURL: imageURL}); err != nil {
		return "", err
	}
	return imageURL, nil
}

// GetImageURL returns the user's avatar URL, falling back to the default image.
func (s *ImageService) GetImageURL(ctx context.Context, userID uuid.UUID) (string, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return "", err
	}
	image, err := s.store.Images.FindByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return DefaultProfileImageURL, nil
		}
		return "", err
	}
	return image.ImageURL, nil
}

// DeleteImageURL removes the user's stored avatar URL.
func (s *ImageService) DeleteImageURL(ctx context.Context, userID uuid.UUID) error {
	logrus.WithField("user_id", userID).Info("Deleting profile image URL")

	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.store.Images.DeleteByUserID(ctx, userID)
}

func (s *ImageService) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.store.Users.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
