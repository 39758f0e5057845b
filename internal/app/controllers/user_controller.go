package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// UserController handles profile operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile handles retrieving the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	profile, err := c.userService.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles partial profile updates
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	profile, err := c.userService.UpdateProfile(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfilePhoto handles profile photo upload
// @Summary Upload profile photo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfileResponse} "Photo updated"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Router /users/me/photo [put]
func (c *UserController) UpdateProfilePhoto(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		respondBindingError(ctx, err)
		return
	}

	profile, err := c.userService.UpdateProfilePhoto(ctx.Request.Context(), user.ID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteProfilePhoto handles profile photo removal
// @Summary Delete profile photo
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Photo removed"
// @Router /users/me/photo [delete]
func (c *UserController) DeleteProfilePhoto(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.userService.DeleteProfilePhoto(ctx.Request.Context(), user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile photo removed"))
}
