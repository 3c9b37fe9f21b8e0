package services

import (
	"time"

	"github.com/google/uuid"

	"project-user-api/models"
)

// Placeholder values used when a member's user or profile record has been
// removed; listings degrade instead of failing.
const (
	placeholderName  = "Deleted User"
	placeholderEmail = "unknown@user.com"
)

// WorkspaceView is the assembled workspace response, with the owner resolved
// from the authoritative OWNER membership record.
type WorkspaceView struct {
	WorkspaceID  uuid.UUID `json:"workspace_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	OwnerID      uuid.UUID `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	OwnerEmail   string    `json:"owner_email"`
	IsPublic     bool      `json:"is_public"`
	NeedApproved bool      `json:"need_approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WorkspaceSettingsView exposes the operational settings of a workspace.
type WorkspaceSettingsView struct {
	WorkspaceID        uuid.UUID `json:"workspace_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	IsPublic           bool      `json:"is_public"`
	RequiresApproval   bool      `json:"requires_approval"`
	OnlyOwnerCanInvite bool      `json:"only_owner_can_invite"` // not yet backed by a workspace field
}

// WorkspaceMemberView is a membership row with display fields resolved.
type WorkspaceMemberView struct {
	ID              uuid.UUID `json:"id"`
	WorkspaceID     uuid.UUID `json:"workspace_id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	Role            string    `json:"role_name"`
	IsDefault       bool      `json:"is_default"`
	IsActive        bool      `json:"is_active"`
	JoinedAt        time.Time `json:"joined_at"`
}

// JoinRequestView is a join request with the requesting user resolved.
type JoinRequestView struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserProfileView is the profile response shape.
type UserProfileView struct {
	ProfileID       uuid.UUID `json:"profile_id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Email           *string   `json:"email,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newWorkspaceView(ws *models.Workspace, owner *models.User, ownerProfile *models.UserProfile) *WorkspaceView {
	view := &WorkspaceView{
		WorkspaceID:  ws.WorkspaceID,
		Name:         ws.Name,
		Description:  ws.Description,
		IsPublic:     ws.IsPublic,
		NeedApproved: ws.NeedApproved,
		CreatedAt:    ws.CreatedAt,
		UpdatedAt:    ws.UpdatedAt,
	}
	view.OwnerName = placeholderName
	view.OwnerEmail = placeholderEmail
	if owner != nil {
		view.OwnerID = owner.UserID
		view.OwnerEmail = owner.Email
	}
	if ownerProfile != nil {
		view.OwnerName = ownerProfile.Name
	}
	return view
}

func newWorkspaceSettingsView(ws *models.Workspace) *WorkspaceSettingsView {
	return &WorkspaceSettingsView{
		WorkspaceID:      ws.WorkspaceID,
		Name:             ws.Name,
		Description:      ws.Description,
		IsPublic:         ws.IsPublic,
		RequiresApproval: ws.NeedApproved,
	}
}

func newWorkspaceMemberView(member *models.WorkspaceMember, user *models.User, profile *models.UserProfile) *WorkspaceMemberView {
	view := &WorkspaceMemberView{
		ID:          member.ID,
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		UserName:    placeholderName,
		UserEmail:   placeholderEmail,
		Role:        string(member.Role),
		IsDefault:   member.IsDefault,
		IsActive:    member.IsActive,
		JoinedAt:    member.JoinedAt,
	}
	if user != nil {
		view.UserEmail = user.Email
	}
	if profile != nil {
		view.UserName = profile.Name
		view.ProfileImageURL = profile.ProfileImageURL
	}
	return view
}

func newJoinRequestView(req *models.WorkspaceJoinRequest, user *models.User, profile *models.UserProfile) *JoinRequestView {
	view := &JoinRequestView{
		ID:          req.ID,
		WorkspaceID: req.WorkspaceID,
		UserID:      req.UserID,
		UserName:    placeholderName,
		UserEmail:   placeholderEmail,
		Status:      string(req.Status),
		RequestedAt: req.RequestedAt,
		UpdatedAt:   req.UpdatedAt,
	}
	if user != nil {
		view.UserEmail = user.Email
	}
	if profile != nil {
		view.UserName = profile.Name
	}
	return view
}

func newUserProfileView(profile *models.UserProfile) *UserProfileView {
	return &UserProfileView{
		ProfileID:       profile.ProfileID,
		UserID:          profile.UserID,
		Name:            profile.Name,
		Email:           profile.Email,
		ProfileImageURL: profile.ProfileImageURL,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}
