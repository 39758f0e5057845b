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

// JobController handles job board operations
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// CreateJob handles posting a job, faculty and admins only
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Job posted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(job))
}

// GetAllJobs handles listing job postings
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by title or company"
// @Param jobType query string false "Filter by job type"
// @Param open query bool false "Only jobs with a future deadline"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Jobs retrieved"
// @Router /jobs [get]
func (c *JobController) GetAllJobs(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.JobFilterRequest{Page: page, PageSize: pageSize}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if jobType := ctx.Query("jobType"); jobType != "" {
		filter.JobType = &jobType
	}
	filter.OpenOnly = ctx.Query("open") == "true"

	jobs, err := c.jobService.GetAllJobs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs))
}

// GetJobByID handles retrieving a job with the caller's application state
// @Summary Get job by ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job retrieved"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJobByID(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	job, err := c.jobService.GetJobByID(ctx.Request.Context(), jobID, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job))
}

// UpdateJob handles partial job updates
// @Summary Update a job
// @Description Applies partial changes. Poster and platform admins only.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Job changes"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), user, jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job))
}

// DeleteJob handles job deletion
// @Summary Delete a job
// @Description Removes the posting with its applications. Poster and platform admins only.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse "Job deleted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.jobService.DeleteJob(ctx.Request.Context(), user, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job deleted"))
}

// Apply handles submitting a job application
// @Summary Apply to a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyJobRequest true "Application with resume link"
// @Success 201 {object} dto.APIResponse{data=dto.JobApplicationResponse} "Application submitted"
// @Failure 409 {object} dto.ErrorResponse "Already applied or deadline passed"
// @Router /jobs/{id}/applications [post]
func (c *JobController) Apply(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	application, err := c.jobService.Apply(ctx.Request.Context(), user.ID, jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// Withdraw handles withdrawing an application
// @Summary Withdraw own application
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse "Application withdrawn"
// @Failure 404 {object} dto.ErrorResponse "No application found"
// @Router /jobs/{id}/applications [delete]
func (c *JobController) Withdraw(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.jobService.Withdraw(ctx.Request.Context(), user.ID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application withdrawn"))
}

// GetApplications handles listing a posting's applications
// @Summary List job applications
// @Description Poster and platform admins only
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.JobApplicationResponse} "Applications retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /jobs/{id}/applications [get]
func (c *JobController) GetApplications(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	applications, err := c.jobService.GetApplications(ctx.Request.Context(), user, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// GetMyApplications handles listing the caller's applications
// @Summary List own applications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.JobApplicationResponse} "Applications retrieved"
// @Router /jobs/applications/me [get]
func (c *JobController) GetMyApplications(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	applications, err := c.jobService.GetMyApplications(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(applications))
}

// UpdateApplicationStatus handles moving an application along the pipeline
// @Summary Update application status
// @Description Poster and platform admins only
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param applicationId path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /jobs/{id}/applications/{applicationId}/status [put]
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(ctx, "applicationId")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	err := c.jobService.UpdateApplicationStatus(ctx.Request.Context(), user, jobID, applicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application status updated"))
}

// UploadResume handles resume upload
// @Summary Upload a resume
// @Description Stores the resume and returns its URL for use in an application
// @Tags jobs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeUploadResponse} "Resume stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Router /jobs/resumes [post]
func (c *JobController) UploadResume(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		respondBindingError(ctx, err)
		return
	}

	resume, err := c.jobService.UploadResume(ctx.Request.Context(), user.ID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resume))
}
