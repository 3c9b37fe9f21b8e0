package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidRole is returned when a role string does not name a known workspace role.
	ErrInvalidRole = errors.New("invalid workspace role")
	// ErrInvalidStatus is returned when a status string does not name a known join request status.
	ErrInvalidStatus = errors.New("invalid join request status")
)

// WorkspaceRole is the role a member holds within a workspace.
type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "OWNER"
	RoleAdmin  WorkspaceRole = "ADMIN"
	RoleMember WorkspaceRole = "MEMBER"
)

// ParseWorkspaceRole converts a raw role string into a WorkspaceRole,
// rejecting anything outside the closed set.
func ParseWorkspaceRole(s string) (WorkspaceRole, error) {
	switch WorkspaceRole(s) {
	case RoleOwner, RoleAdmin, RoleMember:
		return WorkspaceRole(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Workspace is a tenant container scoping membership and resources.
// OwnerID is denormalized for display; the OWNER membership row is authoritative.
type Workspace struct {
	WorkspaceID uuid.UUID `gorm:"type:uuid;primaryKey" json:"workspace_id"`

	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`

	IsPublic     bool `gorm:"not null;default:false" json:"is_public"`
	NeedApproved bool `gorm:"not null;default:true" json:"need_approved"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.WorkspaceID == uuid.Nil {
		w.WorkspaceID = uuid.New()
	}
	return nil
}

// SoftDelete deactivates the workspace without removing the row.
// Memberships and join requests are left untouched as historical records.
func (w *Workspace) SoftDelete() {
	now := time.Now()
	w.IsActive = false
	w.DeletedAt = &now
}

// Restore reverses a soft delete.
func (w *Workspace) Restore() {
	w.IsActive = true
	w.DeletedAt = nil
}

// WorkspaceMember is the (user, workspace, role) relationship record.
// At most one active membership per (workspace, user), exactly one active
// OWNER per active workspace, and at most one IsDefault=true across a
// user's active memberships.
type WorkspaceMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Role      WorkspaceRole `gorm:"size:20;not null" json:"role"`
	IsDefault bool          `gorm:"not null;default:false" json:"is_default"`
	IsActive  bool          `gorm:"not null;default:true" json:"is_active"`

	JoinedAt  time.Time `gorm:"autoCreateTime" json:"joined_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *WorkspaceMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
