package services

import (
	"context"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"project-user-api/models"
	"project-user-api/repository"
)

// UserService manages user accounts and profiles. Accounts are only ever
// soft-deleted.
type UserService struct {
	store *repository.Store
}

// NewUserService creates a UserService on top of the given store.
func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

// SoftDeleteUser deactivates an account, keeping the row for history.
func (s *UserService) SoftDeleteUser(ctx context.Context, userID uuid.UUID) error {
	logrus.WithField("user_id", userID).Info("Soft deleting user")

	ok, err := s.store.Users.SoftDeleteByID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// ReactivateUser restores a soft-deleted account.
func (s *UserService) ReactivateUser(ctx context.Context, userID uuid.UUID) error {
	logrus.WithField("user_id", userID).Info("Reactivating user")

	ok, err := s.store.Users.ReactivateByID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// GetActiveUser returns an active account by ID.
func (s *UserService) GetActiveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAllActiveUsers lists all active accounts.
func (s *UserService) GetAllActiveUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.Users.FindAllActive(ctx)
}

// GetUsersByIDs batch-resolves accounts by ID.
func (s *UserService) GetUsersByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*models.User, error) {
	return s.store.Users.FindAllByIDIn(ctx, userIDs)
}

// SearchUsers looks up active users by the given query. Email-shaped queries
// match the account email exactly; anything else is a display-name substring
// search over profiles.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]*models.User, error) {
	if checkmail.ValidateFormat(query) == nil {
		user, err := s.store.Users.FindActiveByEmail(ctx, query)
		if err != nil {
			if isNotFound(err) {
				return []*models.User{}, nil
			}
			return nil, err
		}
		return []*models.User{user}, nil
	}

	profiles, err := s.store.Profiles.FindAllByNameContaining(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []*models.User{}, nil
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.UserID)
	}
	users, err := s.store.Users.FindAllByIDIn(ctx, ids)
	if err != nil {
		return nil, err
	}

	active := make([]*models.User, 0, len(users))
	for _, user := range users {
		if user.IsActive {
			active = append(active, user)
		}
	}
	return active, nil
}

// UpdateProfileInput carries partial profile updates; empty strings and nil
// pointers leave the current value unchanged.
type UpdateProfileInput struct {
	Name            string
	Email           *string
	ProfileImageURL *string
}

// GetProfile returns the user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	profile, err := s.store.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return newUserProfileView(profile), nil
}

// UpdateProfile applies partial updates to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UserProfileView, error) {
	logrus.WithField("user_id", userID).Info("Updating user profile")

	profile, err := s.store.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Email != nil {
		profile.Email = input.Email
	}
	if input.ProfileImageURL != nil {
		profile.ProfileImageURL = input.ProfileImageURL
	}

	if err := s.store.Profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return newUserProfileView(profile), nil
}
