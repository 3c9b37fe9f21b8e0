package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user account in the system. Accounts are never hard-deleted;
// deactivation flips IsActive and stamps DeletedAt so the record survives for history.
type User struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`

	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Provider string  `gorm:"default:'google'" json:"provider"`
	GoogleID *string `gorm:"uniqueIndex" json:"google_id,omitempty"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// SoftDelete deactivates the account without removing the row.
func (u *User) SoftDelete() {
	now := time.Now()
	u.IsActive = false
	u.DeletedAt = &now
}

// Restore reverses a soft delete.
func (u *User) Restore() {
	u.IsActive = true
	u.DeletedAt = nil
}

// UserProfile holds display information for a user (1:1 via UserID).
// Email here is an optional override of the account email for display purposes.
type UserProfile struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Name            string  `gorm:"size:50;not null" json:"name"`
	Email           *string `gorm:"size:100" json:"email,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ProfileID == uuid.Nil {
		p.ProfileID = uuid.New()
	}
	return nil
}

// Image stores the uploaded avatar URL for a user, keyed by user ID.
type Image struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ImageURL string    `json:"image_url"`
}
