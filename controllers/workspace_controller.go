package controller

import (
	"github.com/gofiber/fiber/v2"

	"project-user-api/services"
	"project-user-api/utils"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateWorkspaceRequest struct {
	Name        string `json:"name" validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type UpdateWorkspaceSettingsRequest struct {
	Name         string `json:"name" validate:"omitempty,max=50"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	IsPublic     *bool  `json:"is_public"`
	NeedApproved *bool  `json:"need_approved"`
}

type UpdateMemberRoleRequest struct {
	RoleName string `json:"role_name" validate:"required,workspace_role"`
}

type UpdateJoinRequestRequest struct {
	Status string `json:"status" validate:"required,join_status"`
}

// WorkspaceController exposes the workspace, membership and join-request
// endpoints.
type WorkspaceController struct {
	workspaces *services.WorkspaceService
}

func NewWorkspaceController(workspaces *services.WorkspaceService) *WorkspaceController {
	return &WorkspaceController{workspaces: workspaces}
}

// CreateWorkspace handles POST /workspaces
func (wc *WorkspaceController) CreateWorkspace(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.CreateWorkspace(c.Context(), services.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
	}, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetUserWorkspaces handles GET /workspaces
func (wc *WorkspaceController) GetUserWorkspaces(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	views, err := wc.workspaces.GetUserWorkspaces(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// GetWorkspace handles GET /workspaces/:workspaceId
func (wc *WorkspaceController) GetWorkspace(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.GetWorkspace(c.Context(), workspaceID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// UpdateWorkspace handles PUT /workspaces/:workspaceId
func (wc *WorkspaceController) UpdateWorkspace(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.UpdateWorkspace(c.Context(), workspaceID, services.UpdateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
	}, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// DeleteWorkspace handles DELETE /workspaces/:workspaceId
func (wc *WorkspaceController) DeleteWorkspace(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.DeleteWorkspace(c.Context(), workspaceID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workspace deleted successfully"})
}

// ReactivateWorkspace handles POST /workspaces/:workspaceId/reactivate
func (wc *WorkspaceController) ReactivateWorkspace(c *fiber.Ctx) error {
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.ReactivateWorkspace(c.Context(), workspaceID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workspace reactivated successfully"})
}

// GetWorkspaceSettings handles GET /workspaces/:workspaceId/settings
func (wc *WorkspaceController) GetWorkspaceSettings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.GetWorkspaceSettings(c.Context(), workspaceID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// UpdateWorkspaceSettings handles PUT /workspaces/:workspaceId/settings
func (wc *WorkspaceController) UpdateWorkspaceSettings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateWorkspaceSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.UpdateWorkspaceSettings(c.Context(), workspaceID, services.UpdateWorkspaceSettingsInput{
		Name:         req.Name,
		Description:  req.Description,
		IsPublic:     req.IsPublic,
		NeedApproved: req.NeedApproved,
	}, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// SetDefaultWorkspace handles POST /workspaces/:workspaceId/default
func (wc *WorkspaceController) SetDefaultWorkspace(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.SetDefaultWorkspace(c.Context(), workspaceID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Default workspace updated"})
}

// GetWorkspaceMembers handles GET /workspaces/:workspaceId/members
func (wc *WorkspaceController) GetWorkspaceMembers(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	views, err := wc.workspaces.GetWorkspaceMembers(c.Context(), workspaceID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// UpdateMemberRole handles PUT /workspaces/:workspaceId/members/:memberId/role
func (wc *WorkspaceController) UpdateMemberRole(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	memberID, err := parseUUIDParam(c, "memberId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateMemberRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.UpdateMemberRole(c.Context(), workspaceID, memberID, req.RoleName, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// RemoveMember handles DELETE /workspaces/:workspaceId/members/:memberId
func (wc *WorkspaceController) RemoveMember(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	memberID, err := parseUUIDParam(c, "memberId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.RemoveMember(c.Context(), workspaceID, memberID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Member removed successfully"})
}

// CreateJoinRequest handles POST /workspaces/:workspaceId/join-requests
func (wc *WorkspaceController) CreateJoinRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.CreateJoinRequest(c.Context(), workspaceID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetJoinRequests handles GET /workspaces/:workspaceId/join-requests?status=
func (wc *WorkspaceController) GetJoinRequests(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	views, err := wc.workspaces.GetJoinRequests(c.Context(), workspaceID, userID, c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// UpdateJoinRequest handles PUT /workspaces/:workspaceId/join-requests/:requestId
func (wc *WorkspaceController) UpdateJoinRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	requestID, err := parseUUIDParam(c, "requestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateJoinRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := wc.workspaces.UpdateJoinRequest(c.Context(), workspaceID, requestID, req.Status, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// ApproveJoinRequest handles POST /workspaces/:workspaceId/join-requests/:userId/approve
func (wc *WorkspaceController) ApproveJoinRequest(c *fiber.Ctx) error {
	responderID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.ApproveJoinRequest(c.Context(), workspaceID, userID, responderID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Join request approved"})
}

// RejectJoinRequest handles POST /workspaces/:workspaceId/join-requests/:userId/reject
func (wc *WorkspaceController) RejectJoinRequest(c *fiber.Ctx) error {
	responderID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := wc.workspaces.RejectJoinRequest(c.Context(), workspaceID, userID, responderID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Join request rejected"})
}
