package services

import "errors"

// Typed failures surfaced to the transport layer. None are retried internally;
// they describe client or state errors, not transient faults.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileNotFound   = errors.New("user profile not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrMemberNotFound    = errors.New("member not found")
	ErrRequestNotFound   = errors.New("join request not found")

	ErrNotAMember = errors.New("user is not a member of this workspace")
	ErrForbidden  = errors.New("insufficient workspace role for this action")

	ErrAlreadyMember            = errors.New("user is already a member of this workspace")
	ErrRequestAlreadyPending    = errors.New("a pending join request already exists for this user")
	ErrMemberWorkspaceMismatch  = errors.New("member does not belong to this workspace")
	ErrRequestWorkspaceMismatch = errors.New("join request does not belong to this workspace")

	ErrCannotRemoveOwner = errors.New("cannot remove the workspace owner")
	ErrCannotRemoveSelf  = errors.New("cannot remove yourself from the workspace")
	ErrCannotDemoteOwner = errors.New("cannot demote the workspace owner")
)
