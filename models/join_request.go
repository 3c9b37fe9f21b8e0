package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequestStatus is the disposition state of a workspace join request.
// PENDING is the only non-terminal state.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestApproved JoinRequestStatus = "APPROVED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

// ParseJoinRequestStatus converts a raw status string into a JoinRequestStatus,
// rejecting anything outside the closed set.
func ParseJoinRequestStatus(s string) (JoinRequestStatus, error) {
	switch JoinRequestStatus(s) {
	case JoinRequestPending, JoinRequestApproved, JoinRequestRejected:
		return JoinRequestStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// WorkspaceJoinRequest is a user's application to join a workspace.
// It transitions exactly once out of PENDING, to APPROVED or REJECTED.
type WorkspaceJoinRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Status JoinRequestStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *WorkspaceJoinRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = JoinRequestPending
	}
	return nil
}
