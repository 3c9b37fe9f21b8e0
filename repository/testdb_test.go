package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-user-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Image{},
		&models.Workspace{},
		&models.WorkspaceMember{},
		&models.WorkspaceJoinRequest{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}
