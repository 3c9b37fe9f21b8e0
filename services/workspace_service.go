package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"project-user-api/models"
	"project-user-api/repository"
)

// WorkspaceService owns the workspace lifecycle, membership management and the
// join-request workflow. Every mutating operation resolves the caller's
// membership first, then applies the change, then assembles the returned view.
type WorkspaceService struct {
	store *repository.Store
}

// NewWorkspaceService creates a WorkspaceService on top of the given store.
func NewWorkspaceService(store *repository.Store) *WorkspaceService {
	return &WorkspaceService{store: store}
}

// CreateWorkspaceInput carries the fields for workspace creation.
type CreateWorkspaceInput struct {
	Name        string
	Description string
}

// UpdateWorkspaceInput carries partial updates; empty strings leave the
// current value unchanged.
type UpdateWorkspaceInput struct {
	Name        string
	Description string
}

// UpdateWorkspaceSettingsInput carries partial settings updates; empty strings
// and nil booleans leave the current value unchanged.
type UpdateWorkspaceSettingsInput struct {
	Name         string
	Description  string
	IsPublic     *bool
	NeedApproved *bool
}

// ============================================================================
// Workspace lifecycle
// ============================================================================

// CreateWorkspace creates a new workspace with the creator as its OWNER.
// The workspace row and the OWNER membership are written in one transaction.
// New workspaces start private and approval-required; the creator's membership
// becomes their default workspace.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput, creatorID uuid.UUID) (*WorkspaceView, error) {
	logrus.WithFields(logrus.Fields{
		"name":    input.Name,
		"creator": creatorID,
	}).Info("Creating workspace")

	creator, err := s.store.Users.FindByID(ctx, creatorID)
	if err != nil {
		if isNotFound(err) {
			logrus.WithField("user_id", creatorID).Warn("User not found")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	workspace := &models.Workspace{
		Name:         input.Name,
		Description:  input.Description,
		OwnerID:      creatorID,
		IsPublic:     false,
		NeedApproved: true,
		IsActive:     true,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Workspaces.Create(ctx, workspace); err != nil {
			return err
		}
		// creator gets their first default cleared elsewhere; clearing here keeps
		// the at-most-one-default invariant when a user creates a second workspace
		if err := tx.Members.ClearDefaultForUser(ctx, creatorID); err != nil {
			return err
		}
		owner := &models.WorkspaceMember{
			WorkspaceID: workspace.WorkspaceID,
			UserID:      creatorID,
			Role:        models.RoleOwner,
			IsDefault:   true,
			IsActive:    true,
		}
		return tx.Members.Create(ctx, owner)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("workspace_id", workspace.WorkspaceID).Info("Workspace created, creator added as OWNER")

	profile, err := s.store.Profiles.FindByUserID(ctx, creatorID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return newWorkspaceView(workspace, creator, profile), nil
}

// UpdateWorkspace updates the identity-defining fields of a workspace.
// OWNER only; empty input fields are left unchanged.
func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, workspaceID uuid.UUID, input UpdateWorkspaceInput, requesterID uuid.UUID) (*WorkspaceView, error) {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"requester":    requesterID,
	}).Info("Updating workspace")

	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}

	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		workspace.Name = input.Name
	}
	if input.Description != "" {
		workspace.Description = input.Description
	}

	if err := s.store.Workspaces.Save(ctx, workspace); err != nil {
		return nil, err
	}

	logrus.WithField("workspace_id", workspaceID).Info("Workspace updated")
	return s.assembleWorkspaceView(ctx, workspace)
}

// GetWorkspaceSettings returns the operational settings of a workspace.
// Any member may read them.
func (s *WorkspaceService) GetWorkspaceSettings(ctx context.Context, workspaceID, requesterID uuid.UUID) (*WorkspaceSettingsView, error) {
	if err := s.requireMember(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}
	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return newWorkspaceSettingsView(workspace), nil
}

// UpdateWorkspaceSettings updates the operational settings of a workspace.
// Settings are not identity-defining, so ADMIN is allowed alongside OWNER.
func (s *WorkspaceService) UpdateWorkspaceSettings(ctx context.Context, workspaceID uuid.UUID, input UpdateWorkspaceSettingsInput, requesterID uuid.UUID) (*WorkspaceSettingsView, error) {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"requester":    requesterID,
	}).Info("Updating workspace settings")

	if err := s.requireAdminOrOwner(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}

	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		workspace.Name = input.Name
	}
	if input.Description != "" {
		workspace.Description = input.Description
	}
	if input.IsPublic != nil {
		workspace.IsPublic = *input.IsPublic
	}
	if input.NeedApproved != nil {
		workspace.NeedApproved = *input.NeedApproved
	}

	if err := s.store.Workspaces.Save(ctx, workspace); err != nil {
		return nil, err
	}

	logrus.WithField("workspace_id", workspaceID).Info("Workspace settings updated")
	return newWorkspaceSettingsView(workspace), nil
}

// DeleteWorkspace soft-deletes a workspace. OWNER only. Memberships and join
// requests are kept as historical records.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, workspaceID, requesterID uuid.UUID) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"requester":    requesterID,
	}).Info("Deleting workspace")

	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return err
	}

	ok, err := s.store.Workspaces.SoftDeleteByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if !ok {
		logrus.WithField("workspace_id", workspaceID).Warn("Workspace not found")
		return ErrWorkspaceNotFound
	}
	logrus.WithField("workspace_id", workspaceID).Info("Workspace deleted")
	return nil
}

// ReactivateWorkspace restores a soft-deleted workspace. Privileged operation;
// the transport layer restricts access.
func (s *WorkspaceService) ReactivateWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	logrus.WithField("workspace_id", workspaceID).Info("Reactivating workspace")

	ok, err := s.store.Workspaces.ReactivateByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkspaceNotFound
	}
	return nil
}

// ============================================================================
// Workspace reads
// ============================================================================

// GetWorkspace returns a workspace view. Members only.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, workspaceID, requesterID uuid.UUID) (*WorkspaceView, error) {
	if err := s.requireMember(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}
	workspace, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return s.assembleWorkspaceView(ctx, workspace)
}

// GetUserWorkspaces lists every workspace where the user holds an active
// membership, with each workspace's owner resolved for display.
func (s *WorkspaceService) GetUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]*WorkspaceView, error) {
	members, err := s.store.Members.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*WorkspaceView, 0, len(members))
	for _, member := range members {
		workspace, err := s.findWorkspace(ctx, member.WorkspaceID)
		if err != nil {
			return nil, err
		}
		view, err := s.assembleWorkspaceView(ctx, workspace)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// SetDefaultWorkspace marks the target workspace as the user's default.
// All other defaults are cleared in the same transaction, so a concurrent
// reader never observes two defaults or zero defaults mid-switch.
func (s *WorkspaceService) SetDefaultWorkspace(ctx context.Context, workspaceID, userID uuid.UUID) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"user_id":      userID,
	}).Info("Setting default workspace")

	if err := s.requireMember(ctx, workspaceID, userID); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Members.ClearDefaultForUser(ctx, userID); err != nil {
			return err
		}
		member, err := tx.Members.FindActiveByWorkspaceAndUser(ctx, workspaceID, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrNotAMember
			}
			return err
		}
		member.IsDefault = true
		return tx.Members.Save(ctx, member)
	})
}

// ============================================================================
// Membership management
// ============================================================================

// GetWorkspaceMembers lists all membership rows of a workspace, inactive ones
// included, with display fields resolved. Missing user or profile records
// degrade to placeholder values instead of failing the listing.
func (s *WorkspaceService) GetWorkspaceMembers(ctx context.Context, workspaceID, requesterID uuid.UUID) ([]*WorkspaceMemberView, error) {
	if err := s.requireMember(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}

	members, err := s.store.Members.FindAllByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	views := make([]*WorkspaceMemberView, 0, len(members))
	for _, member := range members {
		user, profile := s.resolveUser(ctx, member.UserID)
		views = append(views, newWorkspaceMemberView(member, user, profile))
	}
	return views, nil
}

// UpdateMemberRole changes a member's role. OWNER only. Demoting the OWNER
// membership is rejected; ownership transfer is not done through this path.
func (s *WorkspaceService) UpdateMemberRole(ctx context.Context, workspaceID, memberID uuid.UUID, roleName string, requesterID uuid.UUID) (*WorkspaceMemberView, error) {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"member_id":    memberID,
		"new_role":     roleName,
		"requester":    requesterID,
	}).Info("Updating member role")

	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}

	role, err := models.ParseWorkspaceRole(roleName)
	if err != nil {
		return nil, err
	}

	member, err := s.store.Members.FindByID(ctx, memberID)
	if err != nil {
		if isNotFound(err) {
			logrus.WithField("member_id", memberID).Warn("Member not found")
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if member.WorkspaceID != workspaceID {
		logrus.WithFields(logrus.Fields{
			"member_id":    memberID,
			"workspace_id": workspaceID,
		}).Warn("Member does not belong to workspace")
		return nil, ErrMemberWorkspaceMismatch
	}
	if member.Role == models.RoleOwner && role != models.RoleOwner {
		logrus.WithField("member_id", memberID).Warn("Refusing to demote workspace owner")
		return nil, ErrCannotDemoteOwner
	}

	member.Role = role
	if err := s.store.Members.Save(ctx, member); err != nil {
		return nil, err
	}

	user, profile := s.resolveUser(ctx, member.UserID)
	return newWorkspaceMemberView(member, user, profile), nil
}

// RemoveMember deactivates a membership. OWNER or ADMIN. The OWNER membership
// cannot be removed, and requesters cannot remove themselves through this path.
func (s *WorkspaceService) RemoveMember(ctx context.Context, workspaceID, memberID, requesterID uuid.UUID) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"member_id":    memberID,
		"requester":    requesterID,
	}).Info("Removing member")

	if err := s.requireAdminOrOwner(ctx, workspaceID, requesterID); err != nil {
		return err
	}

	member, err := s.store.Members.FindByID(ctx, memberID)
	if err != nil {
		if isNotFound(err) {
			return ErrMemberNotFound
		}
		return err
	}
	if member.WorkspaceID != workspaceID {
		return ErrMemberWorkspaceMismatch
	}
	if member.Role == models.RoleOwner {
		logrus.WithField("member_id", memberID).Warn("Cannot remove workspace owner")
		return ErrCannotRemoveOwner
	}
	if member.UserID == requesterID {
		logrus.WithField("user_id", requesterID).Warn("User cannot remove themselves")
		return ErrCannotRemoveSelf
	}

	member.IsActive = false
	if err := s.store.Members.Save(ctx, member); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"member_id":    memberID,
	}).Info("Member removed")
	return nil
}

// ============================================================================
// Join requests
// ============================================================================

// CreateJoinRequest files a PENDING join request for the user. Fails when the
// user is already an active member or already has a pending request.
func (s *WorkspaceService) CreateJoinRequest(ctx context.Context, workspaceID, userID uuid.UUID) (*JoinRequestView, error) {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"user_id":      userID,
	}).Info("Creating join request")

	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isMember, err := s.store.Members.ExistsActiveByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if isMember {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"user_id":      userID,
		}).Warn("User is already a member")
		return nil, ErrAlreadyMember
	}

	if _, err := s.store.JoinRequests.FindPendingByWorkspaceAndUser(ctx, workspaceID, userID); err == nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"user_id":      userID,
		}).Warn("Pending join request already exists")
		return nil, ErrRequestAlreadyPending
	} else if !isNotFound(err) {
		return nil, err
	}

	request := &models.WorkspaceJoinRequest{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Status:      models.JoinRequestPending,
	}
	if err := s.store.JoinRequests.Create(ctx, request); err != nil {
		return nil, err
	}
	logrus.WithField("request_id", request.ID).Info("Join request created")

	profile, err := s.store.Profiles.FindByUserID(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	return newJoinRequestView(request, user, profile), nil
}

// ApproveJoinRequest approves the pending request for (workspace, user) and
// creates the MEMBER membership in the same transaction. A request that has
// already been decided is reported as not found, which makes double approval
// fail cleanly.
func (s *WorkspaceService) ApproveJoinRequest(ctx context.Context, workspaceID, userID, responderID uuid.UUID) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"user_id":      userID,
		"responder":    responderID,
	}).Info("Approving join request")

	if err := s.requireAdminOrOwner(ctx, workspaceID, responderID); err != nil {
		return err
	}

	request, err := s.findPendingRequest(ctx, workspaceID, userID)
	if err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		member := &models.WorkspaceMember{
			WorkspaceID: workspaceID,
			UserID:      userID,
			Role:        models.RoleMember,
			IsDefault:   false,
			IsActive:    true,
		}
		if err := tx.Members.Create(ctx, member); err != nil {
			return err
		}
		request.Status = models.JoinRequestApproved
		return tx.JoinRequests.Save(ctx, request)
	})
}

// RejectJoinRequest rejects the pending request for (workspace, user).
func (s *WorkspaceService) RejectJoinRequest(ctx context.Context, workspaceID, userID, responderID uuid.UUID) error {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"user_id":      userID,
		"responder":    responderID,
	}).Info("Rejecting join request")

	if err := s.requireAdminOrOwner(ctx, workspaceID, responderID); err != nil {
		return err
	}

	request, err := s.findPendingRequest(ctx, workspaceID, userID)
	if err != nil {
		return err
	}

	request.Status = models.JoinRequestRejected
	return s.store.JoinRequests.Save(ctx, request)
}

// UpdateJoinRequest decides a join request addressed by request ID. The target
// status must parse and must not be PENDING; a request that already left
// PENDING is terminal and reported as not found. Approval creates the MEMBER
// membership in the same transaction.
func (s *WorkspaceService) UpdateJoinRequest(ctx context.Context, workspaceID, requestID uuid.UUID, statusName string, responderID uuid.UUID) (*JoinRequestView, error) {
	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"request_id":   requestID,
		"status":       statusName,
		"responder":    responderID,
	}).Info("Updating join request")

	if err := s.requireAdminOrOwner(ctx, workspaceID, responderID); err != nil {
		return nil, err
	}

	status, err := models.ParseJoinRequestStatus(statusName)
	if err != nil {
		return nil, err
	}
	if status == models.JoinRequestPending {
		return nil, models.ErrInvalidStatus
	}

	request, err := s.store.JoinRequests.FindByID(ctx, requestID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if request.WorkspaceID != workspaceID {
		logrus.WithFields(logrus.Fields{
			"request_id":   requestID,
			"workspace_id": workspaceID,
		}).Warn("Join request does not belong to workspace")
		return nil, ErrRequestWorkspaceMismatch
	}
	if request.Status != models.JoinRequestPending {
		return nil, ErrRequestNotFound
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if status == models.JoinRequestApproved {
			member := &models.WorkspaceMember{
				WorkspaceID: workspaceID,
				UserID:      request.UserID,
				Role:        models.RoleMember,
				IsDefault:   false,
				IsActive:    true,
			}
			if err := tx.Members.Create(ctx, member); err != nil {
				return err
			}
		}
		request.Status = status
		return tx.JoinRequests.Save(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	user, profile := s.resolveUser(ctx, request.UserID)
	return newJoinRequestView(request, user, profile), nil
}

// GetJoinRequests lists a workspace's join requests, optionally filtered by
// status. OWNER or ADMIN only.
func (s *WorkspaceService) GetJoinRequests(ctx context.Context, workspaceID, requesterID uuid.UUID, statusFilter string) ([]*JoinRequestView, error) {
	if err := s.requireAdminOrOwner(ctx, workspaceID, requesterID); err != nil {
		return nil, err
	}

	var status *models.JoinRequestStatus
	if statusFilter != "" {
		parsed, err := models.ParseJoinRequestStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	requests, err := s.store.JoinRequests.FindByWorkspace(ctx, workspaceID, status)
	if err != nil {
		return nil, err
	}

	views := make([]*JoinRequestView, 0, len(requests))
	for _, request := range requests {
		user, profile := s.resolveUser(ctx, request.UserID)
		views = append(views, newJoinRequestView(request, user, profile))
	}
	return views, nil
}

// ============================================================================
// Authorization guard
// ============================================================================

// requireMember fails with ErrNotAMember unless the user holds an active
// membership in the workspace. Pure read, no side effects.
func (s *WorkspaceService) requireMember(ctx context.Context, workspaceID, userID uuid.UUID) error {
	ok, err := s.store.Members.ExistsActiveByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if !ok {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"user_id":      userID,
		}).Warn("User is not a member of workspace")
		return ErrNotAMember
	}
	return nil
}

// requireOwner fails with ErrNotAMember when the user has no active membership
// and ErrForbidden when the membership role is not OWNER.
func (s *WorkspaceService) requireOwner(ctx context.Context, workspaceID, userID uuid.UUID) error {
	member, err := s.activeMember(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if member.Role != models.RoleOwner {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"user_id":      userID,
		}).Warn("User is not OWNER of workspace")
		return ErrForbidden
	}
	return nil
}

// requireAdminOrOwner fails with ErrNotAMember when the user has no active
// membership and ErrForbidden when the role is neither OWNER nor ADMIN.
func (s *WorkspaceService) requireAdminOrOwner(ctx context.Context, workspaceID, userID uuid.UUID) error {
	member, err := s.activeMember(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if member.Role != models.RoleOwner && member.Role != models.RoleAdmin {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"user_id":      userID,
		}).Warn("User is not OWNER or ADMIN of workspace")
		return ErrForbidden
	}
	return nil
}

func (s *WorkspaceService) activeMember(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error) {
	member, err := s.store.Members.FindActiveByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotAMember
		}
		return nil, err
	}
	return member, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

func (s *WorkspaceService) findWorkspace(ctx context.Context, workspaceID uuid.UUID) (*models.Workspace, error) {
	workspace, err := s.store.Workspaces.FindByID(ctx, workspaceID)
	if err != nil {
		if isNotFound(err) {
			logrus.WithField("workspace_id", workspaceID).Warn("Workspace not found")
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspace, nil
}

func (s *WorkspaceService) findPendingRequest(ctx context.Context, workspaceID, userID uuid.UUID) (*models.WorkspaceJoinRequest, error) {
	request, err := s.store.JoinRequests.FindPendingByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if isNotFound(err) {
			logrus.WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"user_id":      userID,
			}).Warn("Pending join request not found")
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// assembleWorkspaceView resolves the workspace owner from the authoritative
// OWNER membership row rather than the denormalized OwnerID field.
func (s *WorkspaceService) assembleWorkspaceView(ctx context.Context, workspace *models.Workspace) (*WorkspaceView, error) {
	ownerMember, err := s.store.Members.FindOwnerByWorkspace(ctx, workspace.WorkspaceID)
	if err != nil {
		if isNotFound(err) {
			logrus.WithField("workspace_id", workspace.WorkspaceID).Warn("Workspace owner not found")
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	user, profile := s.resolveUser(ctx, ownerMember.UserID)
	view := newWorkspaceView(workspace, user, profile)
	view.OwnerID = ownerMember.UserID
	return view, nil
}

// resolveUser fetches the user and profile for display, tolerating missing
// records; callers substitute placeholders for nil results.
func (s *WorkspaceService) resolveUser(ctx context.Context, userID uuid.UUID) (*models.User, *models.UserProfile) {
	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		user = nil
	}
	profile, err := s.store.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		profile = nil
	}
	return user, profile
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
