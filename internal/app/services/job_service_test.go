package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type jobServiceFixture struct {
	svc             JobService
	jobRepo         *mockJobRepo
	applicationRepo *mockJobApplicationRepo
	userRepo        *mockUserRepo
}

func setupJobService() *jobServiceFixture {
	jobRepo := newMockJobRepo()
	applicationRepo := newMockJobApplicationRepo()
	userRepo := newMockUserRepo()
	svc := NewJobService(jobRepo, applicationRepo, userRepo, nil, zerolog.Nop())
	return &jobServiceFixture{
		svc:             svc,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

func (f *jobServiceFixture) createJob(t *testing.T, poster *models.User, deadline time.Time) *dto.JobResponse {
	t.Helper()
	job, err := f.svc.CreateJob(context.Background(), poster, &dto.CreateJobRequest{
		Title:       "Research Assistant",
		Description: "Assist with NLP experiments",
		Company:     "CS Department",
		JobType:     "part-time",
		Deadline:    deadline,
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	return job
}

func TestCreateJob_StudentForbidden(t *testing.T) {
	f := setupJobService()
	student := testUser(f.userRepo, 1, models.RoleStudent)

	_, err := f.svc.CreateJob(context.Background(), student, &dto.CreateJobRequest{
		Title:    "X",
		Company:  "Y",
		JobType:  "internship",
		Deadline: time.Now().Add(24 * time.Hour),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestCreateJob_PastDeadline(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)

	_, err := f.svc.CreateJob(context.Background(), faculty, &dto.CreateJobRequest{
		Title:    "X",
		Company:  "Y",
		JobType:  "internship",
		Deadline: time.Now().Add(-time.Hour),
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request for past deadline, got: %v", err)
	}
}

func TestApply_Success(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))

	app, err := f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{
		ResumeLink: "http://localhost:8080/uploads/resumes/abc.pdf",
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if app.Status != string(models.ApplicationApplied) {
		t.Errorf("expected APPLIED status, got %s", app.Status)
	}
}

func TestApply_Duplicate(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))
	req := &dto.ApplyJobRequest{ResumeLink: "http://localhost:8080/uploads/resumes/abc.pdf"}

	if _, err := f.svc.Apply(context.Background(), student.ID, job.ID, req); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	_, err := f.svc.Apply(context.Background(), student.ID, job.ID, req)
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Errorf("expected ErrAlreadyApplied, got: %v", err)
	}
}

func TestApply_DeadlinePassed(t *testing.T) {
	f := setupJobService()
	student := testUser(f.userRepo, 2, models.RoleStudent)

	job := &models.Job{
		Title:    "Expired",
		Company:  "X",
		JobType:  "internship",
		Deadline: time.Now().Add(-time.Hour),
		PostedBy: 1,
	}
	f.jobRepo.Create(context.Background(), job)

	_, err := f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{ResumeLink: "http://x/y.pdf"})
	if !errors.Is(err, apperrors.ErrDeadlinePassed) {
		t.Errorf("expected ErrDeadlinePassed, got: %v", err)
	}
}

func TestWithdraw(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))
	f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{ResumeLink: "http://x/y.pdf"})

	if err := f.svc.Withdraw(context.Background(), student.ID, job.ID); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if _, err := f.applicationRepo.GetByJobAndUser(context.Background(), job.ID, student.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("application should be removed, got: %v", err)
	}
}

func TestUpdateApplicationStatus_PosterOnly(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	other := testUser(f.userRepo, 2, models.RoleFaculty)
	student := testUser(f.userRepo, 3, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))
	app, _ := f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{ResumeLink: "http://x/y.pdf"})

	err := f.svc.UpdateApplicationStatus(context.Background(), other, job.ID, app.ID, models.ApplicationInterview)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got: %v", err)
	}

	if err := f.svc.UpdateApplicationStatus(context.Background(), faculty, job.ID, app.ID, models.ApplicationInterview); err != nil {
		t.Fatalf("UpdateApplicationStatus failed: %v", err)
	}
	stored, _ := f.applicationRepo.GetByID(context.Background(), app.ID)
	if stored.Status != models.ApplicationInterview {
		t.Errorf("expected INTERVIEW status, got %s", stored.Status)
	}
}

func TestUpdateApplicationStatus_UnknownStatus(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))
	app, _ := f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{ResumeLink: "http://x/y.pdf"})

	err := f.svc.UpdateApplicationStatus(context.Background(), faculty, job.ID, app.ID, models.ApplicationStatus("GHOSTED"))
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request for unknown status, got: %v", err)
	}
}

func TestGetJobByID_ApplicationProjection(t *testing.T) {
	f := setupJobService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	job := f.createJob(t, faculty, time.Now().Add(24*time.Hour))
	f.svc.Apply(context.Background(), student.ID, job.ID, &dto.ApplyJobRequest{ResumeLink: "http://x/y.pdf"})

	withApp, err := f.svc.GetJobByID(context.Background(), job.ID, student.ID)
	if err != nil {
		t.Fatalf("GetJobByID failed: %v", err)
	}
	if withApp.ApplicationStatus != string(models.ApplicationApplied) {
		t.Errorf("expected APPLIED projection, got %q", withApp.ApplicationStatus)
	}

	without, err := f.svc.GetJobByID(context.Background(), job.ID, faculty.ID)
	if err != nil {
		t.Fatalf("GetJobByID failed: %v", err)
	}
	if without.ApplicationStatus != "" {
		t.Errorf("expected empty projection for non-applicant, got %q", without.ApplicationStatus)
	}
}
