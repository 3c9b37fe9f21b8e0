package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the entity repositories behind a single injectable unit.
// Transaction runs fn against a store bound to one database transaction, so
// multi-write operations (workspace+owner creation, default-workspace switch,
// join-request approval) commit or roll back as a whole.
type Store struct {
	db *gorm.DB

	Users        UserRepository
	Profiles     UserProfileRepository
	Workspaces   WorkspaceRepository
	Members      WorkspaceMemberRepository
	JoinRequests WorkspaceJoinRequestRepository
	Images       ImageRepository
}

// NewStore creates a Store backed by the given gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        NewUserRepository(db),
		Profiles:     NewUserProfileRepository(db),
		Workspaces:   NewWorkspaceRepository(db),
		Members:      NewWorkspaceMemberRepository(db),
		JoinRequests: NewWorkspaceJoinRequestRepository(db),
		Images:       NewImageRepository(db),
	}
}

// Transaction executes fn within a single database transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
