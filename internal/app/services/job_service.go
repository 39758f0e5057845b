package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// JobService defines the interface for job board operations
type JobService interface {
	CreateJob(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetAllJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error)
	GetJobByID(ctx context.Context, jobID, actorID int64) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, actor *models.User, jobID int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, actor *models.User, jobID int64) error
	Apply(ctx context.Context, actorID, jobID int64, req *dto.ApplyJobRequest) (*dto.JobApplicationResponse, error)
	Withdraw(ctx context.Context, actorID, jobID int64) error
	GetApplications(ctx context.Context, actor *models.User, jobID int64) ([]dto.JobApplicationResponse, error)
	GetMyApplications(ctx context.Context, actorID int64) ([]dto.JobApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, actor *models.User, jobID, applicationID int64, status models.ApplicationStatus) error
	UploadResume(ctx context.Context, actorID int64, fileHeader *multipart.FileHeader) (*dto.ResumeUploadResponse, error)
}

// jobServiceImpl implements JobService
type jobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.JobApplicationRepository
	userRepo        repositories.UserRepository
	fileStorage     *filestorage.LocalStorage
	logger          zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.JobApplicationRepository,
	userRepo repositories.UserRepository,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) JobService {
	return &jobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// canManageJob reports whether the actor may administer the posting.
// The poster and platform admins qualify.
func canManageJob(actor *models.User, job *models.Job) bool {
	return actor.RoleType == models.RoleAdmin || job.PostedBy == actor.ID
}

// CreateJob creates a job posting. Students may not post jobs.
func (s *jobServiceImpl) CreateJob(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if actor.RoleType != models.RoleFaculty && actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}
	if !req.Deadline.After(time.Now()) {
		return nil, apperrors.NewBadRequestError("deadline must be in the future")
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		JobType:     req.JobType,
		Eligibility: req.Eligibility,
		Deadline:    req.Deadline,
		PostedBy:    actor.ID,
	}

	jobID, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = jobID

	s.logger.Info().Int64("jobID", jobID).Int64("postedBy", actor.ID).Msg("Job posted")

	resp := toJobResponse(job, actor)
	return &resp, nil
}

// GetAllJobs retrieves job postings with filtering and pagination
func (s *jobServiceImpl) GetAllJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job, nil))
	}

	return &dto.JobListResponse{
		Jobs:           responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetJobByID retrieves a posting together with the caller's application state
func (s *jobServiceImpl) GetJobByID(ctx context.Context, jobID, actorID int64) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	poster, err := s.userRepo.GetByID(ctx, job.PostedBy)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	resp := toJobResponse(job, poster)

	application, err := s.applicationRepo.GetByJobAndUser(ctx, jobID, actorID)
	if err == nil {
		resp.ApplicationStatus = string(application.Status)
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	return &resp, nil
}

// UpdateJob applies partial changes to a posting
func (s *jobServiceImpl) UpdateJob(ctx context.Context, actor *models.User, jobID int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canManageJob(actor, job) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Eligibility != nil {
		job.Eligibility = *req.Eligibility
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	resp := toJobResponse(job, nil)
	return &resp, nil
}

// DeleteJob removes a posting together with its applications
func (s *jobServiceImpl) DeleteJob(ctx context.Context, actor *models.User, jobID int64) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !canManageJob(actor, job) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	s.logger.Info().Int64("jobID", jobID).Int64("deletedBy", actor.ID).Msg("Job deleted")
	return nil
}

// Apply submits an application. Applications close at the deadline.
func (s *jobServiceImpl) Apply(ctx context.Context, actorID, jobID int64, req *dto.ApplyJobRequest) (*dto.JobApplicationResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Deadline.After(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	application := &models.JobApplication{
		JobID:      jobID,
		UserID:     actorID,
		ResumeLink: req.ResumeLink,
	}
	if _, err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	created, err := s.applicationRepo.GetByJobAndUser(ctx, jobID, actorID)
	if err != nil {
		return nil, err
	}

	return &dto.JobApplicationResponse{
		ID:         created.ID,
		JobID:      created.JobID,
		UserID:     created.UserID,
		ResumeLink: created.ResumeLink,
		Status:     string(created.Status),
		AppliedAt:  created.AppliedAt,
	}, nil
}

// Withdraw removes the caller's application for a job
func (s *jobServiceImpl) Withdraw(ctx context.Context, actorID, jobID int64) error {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return err
	}
	return s.applicationRepo.Delete(ctx, jobID, actorID)
}

// GetApplications lists a posting's applications, visible to its manager only
func (s *jobServiceImpl) GetApplications(ctx context.Context, actor *models.User, jobID int64) ([]dto.JobApplicationResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canManageJob(actor, job) {
		return nil, apperrors.ErrPermissionDenied
	}

	applications, err := s.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(applications))
	for _, a := range applications {
		userIDs = append(userIDs, a.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, dto.JobApplicationResponse{
			ID:         a.ID,
			JobID:      a.JobID,
			UserID:     a.UserID,
			ResumeLink: a.ResumeLink,
			Status:     string(a.Status),
			AppliedAt:  a.AppliedAt,
			User:       toUserBasicResponse(users[a.UserID]),
		})
	}
	return responses, nil
}

// GetMyApplications lists the caller's applications across all postings
func (s *jobServiceImpl) GetMyApplications(ctx context.Context, actorID int64) ([]dto.JobApplicationResponse, error) {
	applications, err := s.applicationRepo.GetByUserID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.JobApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp := dto.JobApplicationResponse{
			ID:         a.ID,
			JobID:      a.JobID,
			UserID:     a.UserID,
			ResumeLink: a.ResumeLink,
			Status:     string(a.Status),
			AppliedAt:  a.AppliedAt,
		}
		if job, err := s.jobRepo.GetByID(ctx, a.JobID); err == nil {
			jobResp := toJobResponse(job, nil)
			resp.Job = &jobResp
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpdateApplicationStatus moves an application along the hiring pipeline,
// posting managers only
func (s *jobServiceImpl) UpdateApplicationStatus(ctx context.Context, actor *models.User, jobID, applicationID int64, status models.ApplicationStatus) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !canManageJob(actor, job) {
		return apperrors.ErrPermissionDenied
	}
	if !status.Valid() {
		return apperrors.NewBadRequestError("unknown application status")
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.JobID != jobID {
		return apperrors.ErrResourceNotFound
	}

	return s.applicationRepo.UpdateStatus(ctx, applicationID, status)
}

// UploadResume stores an uploaded resume and returns its URL for use in
// an application
func (s *jobServiceImpl) UploadResume(ctx context.Context, actorID int64, fileHeader *multipart.FileHeader) (*dto.ResumeUploadResponse, error) {
	resumeLink, err := s.fileStorage.SaveFileWithPath(fileHeader, "resumes")
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userID", actorID).Str("resumeLink", resumeLink).Msg("Resume uploaded")

	return &dto.ResumeUploadResponse{ResumeLink: resumeLink}, nil
}
