package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// TeamController handles team formation operations
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// CreateTeam handles team creation under an event
// @Summary Create a team
// @Description Creates a team for a team based event. The creator becomes its leader.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.APIResponse{data=dto.TeamResponse} "Team created"
// @Failure 409 {object} dto.ErrorResponse "Already in a team for this event"
// @Router /events/{id}/teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	team, err := c.teamService.CreateTeam(ctx.Request.Context(), user.ID, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// GetTeamsByEvent handles listing an event's teams
// @Summary List teams of an event
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.TeamListResponse} "Teams retrieved"
// @Router /events/{id}/teams [get]
func (c *TeamController) GetTeamsByEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, pageSize := helpers.ParsePaginationParams(ctx)

	teams, err := c.teamService.GetTeamsByEvent(ctx.Request.Context(), eventID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// GetTeamByID handles retrieving a team with the caller's relationship
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeamDetailResponse} "Team retrieved"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (c *TeamController) GetTeamByID(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	team, err := c.teamService.GetTeamByID(ctx.Request.Context(), teamID, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// UpdateTeam handles partial team updates
// @Summary Update a team
// @Description Applies partial changes, team leaders only
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Team changes"
// @Success 200 {object} dto.APIResponse{data=dto.TeamResponse} "Team updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /teams/{id} [put]
func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	team, err := c.teamService.UpdateTeam(ctx.Request.Context(), user.ID, teamID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// DeleteTeam handles team deletion
// @Summary Delete a team
// @Description Removes the team with its memberships and join requests. Leaders and platform admins only.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse "Team deleted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.teamService.DeleteTeam(ctx.Request.Context(), user, teamID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Team deleted"))
}

// RequestToJoin handles filing a team join request
// @Summary Request to join a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 201 {object} dto.APIResponse{data=dto.TeamJoinRequestResponse} "Request filed"
// @Failure 409 {object} dto.ErrorResponse "Team full, closed, or already in a team"
// @Router /teams/{id}/join-requests [post]
func (c *TeamController) RequestToJoin(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	request, err := c.teamService.RequestToJoin(ctx.Request.Context(), user.ID, teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// GetPendingRequests handles listing pending team join requests
// @Summary List pending join requests
// @Description Team leaders only
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeamJoinRequestResponse} "Requests retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /teams/{id}/join-requests [get]
func (c *TeamController) GetPendingRequests(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	requests, err := c.teamService.GetPendingRequests(ctx.Request.Context(), user.ID, teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// ResolveRequest handles accepting or rejecting a team join request
// @Summary Resolve a join request
// @Description Accepts or rejects a pending request, team leaders only. Accepting into a full team fails and leaves the request pending.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param requestId path int true "Join request ID"
// @Param request body dto.ResolveRequestRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Request resolved"
// @Failure 409 {object} dto.ErrorResponse "Team full or request already resolved"
// @Router /teams/{id}/join-requests/{requestId} [put]
func (c *TeamController) ResolveRequest(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	requestID, ok := parseIDParam(ctx, "requestId")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.ResolveRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	err := c.teamService.ResolveRequest(ctx.Request.Context(), user.ID, teamID, requestID, req.Decision == "accept")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Join request resolved"))
}

// ChangeRole handles promoting or demoting a team member
// @Summary Change a member's role
// @Description Promotes or demotes a member, team leaders only. Demoting the last leader is refused.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param userId path int true "Member's user ID"
// @Param request body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse "Role changed"
// @Failure 409 {object} dto.ErrorResponse "Would leave the team without a leader"
// @Router /teams/{id}/members/{userId}/role [put]
func (c *TeamController) ChangeRole(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	err := c.teamService.ChangeRole(ctx.Request.Context(), user.ID, teamID, userID, models.TeamMemberRole(req.Role))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Role changed"))
}

// RemoveMember handles kicking a member from the team
// @Summary Remove a team member
// @Description Team leaders only. Leaders cannot remove themselves.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param userId path int true "Member's user ID"
// @Success 200 {object} dto.APIResponse "Member removed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /teams/{id}/members/{userId} [delete]
func (c *TeamController) RemoveMember(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.teamService.RemoveMember(ctx.Request.Context(), user.ID, teamID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Member removed"))
}

// LeaveTeam handles the caller leaving the team
// @Summary Leave a team
// @Description The sole leader of a team with other members must promote a replacement first
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse "Left the team"
// @Failure 409 {object} dto.ErrorResponse "Would leave the team without a leader"
// @Router /teams/{id}/members/me [delete]
func (c *TeamController) LeaveTeam(ctx *gin.Context) {
	teamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.teamService.LeaveTeam(ctx.Request.Context(), user.ID, teamID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Left the team"))
}
