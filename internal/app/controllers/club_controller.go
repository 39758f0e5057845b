package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// ClubController handles club and club membership operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// CreateClub handles club creation, platform admins only
// @Summary Create a club
// @Description Creates a club. The creator becomes a club admin. Platform admins only.
// @Tags clubs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Club name"
// @Param description formData string true "Club description"
// @Param logo formData file false "Club logo"
// @Success 201 {object} dto.APIResponse{data=dto.ClubResponse} "Club created"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /clubs [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	var req dto.CreateClubRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	// Logo is optional
	logo, _ := ctx.FormFile("logo")

	club, err := c.clubService.CreateClub(ctx.Request.Context(), user, &req, logo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(club))
}

// GetAllClubs handles listing clubs
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name or description"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved"
// @Router /clubs [get]
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.ClubFilterRequest{Page: page, PageSize: pageSize}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	clubs, err := c.clubService.GetAllClubs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(clubs))
}

// GetClubByID handles retrieving a club with the caller's relationship
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubDetailResponse} "Club retrieved"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	club, err := c.clubService.GetClubByID(ctx.Request.Context(), clubID, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// UpdateClub handles partial club updates
// @Summary Update a club
// @Description Applies partial changes. Club admins and platform admins only.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body dto.UpdateClubRequest true "Club changes"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /clubs/{id} [put]
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	club, err := c.clubService.UpdateClub(ctx.Request.Context(), user, clubID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// UpdateClubLogo handles club logo upload
// @Summary Upload club logo
// @Tags clubs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param logo formData file true "Club logo"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Logo updated"
// @Router /clubs/{id}/logo [put]
func (c *ClubController) UpdateClubLogo(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	fileHeader, err := ctx.FormFile("logo")
	if err != nil {
		respondBindingError(ctx, err)
		return
	}

	club, err := c.clubService.UpdateClubLogo(ctx.Request.Context(), user, clubID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// DeleteClub handles club deletion
// @Summary Delete a club
// @Description Removes the club with all memberships and join requests
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse "Club deleted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /clubs/{id} [delete]
func (c *ClubController) DeleteClub(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.clubService.DeleteClub(ctx.Request.Context(), user, clubID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Club deleted"))
}

// RequestToJoin handles filing a join request
// @Summary Request to join a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 201 {object} dto.APIResponse{data=dto.ClubJoinRequestResponse} "Request filed"
// @Failure 409 {object} dto.ErrorResponse "Already a member or request pending"
// @Router /clubs/{id}/join-requests [post]
func (c *ClubController) RequestToJoin(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	request, err := c.clubService.RequestToJoin(ctx.Request.Context(), user.ID, clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// GetPendingRequests handles listing pending join requests
// @Summary List pending join requests
// @Description Lists pending requests. Club admins and platform admins only.
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubJoinRequestResponse} "Requests retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /clubs/{id}/join-requests [get]
func (c *ClubController) GetPendingRequests(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	requests, err := c.clubService.GetPendingRequests(ctx.Request.Context(), user, clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// ResolveRequest handles accepting or rejecting a join request
// @Summary Resolve a join request
// @Description Accepts or rejects a pending request. Club admins and platform admins only.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param requestId path int true "Join request ID"
// @Param request body dto.ResolveRequestRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Request resolved"
// @Failure 409 {object} dto.ErrorResponse "Request already resolved"
// @Router /clubs/{id}/join-requests/{requestId} [put]
func (c *ClubController) ResolveRequest(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
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

	err := c.clubService.ResolveRequest(ctx.Request.Context(), user, clubID, requestID, req.Decision == "accept")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Join request resolved"))
}

// GetMembers handles listing club members
// @Summary List club members
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubMemberResponse} "Members retrieved"
// @Router /clubs/{id}/members [get]
func (c *ClubController) GetMembers(ctx *gin.Context) {
	clubID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	members, err := c.clubService.GetMembers(ctx.Request.Context(), clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}
