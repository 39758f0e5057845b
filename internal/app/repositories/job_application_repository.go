package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// JobApplicationRepository defines the interface for job application database operations
type JobApplicationRepository interface {
	Create(ctx context.Context, application *models.JobApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobApplication, error)
	GetByJobAndUser(ctx context.Context, jobID, userID int64) (*models.JobApplication, error)
	GetByJobID(ctx context.Context, jobID int64) ([]*models.JobApplication, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	Delete(ctx context.Context, jobID, userID int64) error
}

type jobApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobApplicationRepository creates a new JobApplicationRepository
func NewJobApplicationRepository(db *pgxpool.Pool) JobApplicationRepository {
	return &jobApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const jobApplicationColumns = "id, job_id, user_id, resume_link, status, applied_at, updated_at"

func scanJobApplication(row pgx.Row) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(&a.ID, &a.JobID, &a.UserID, &a.ResumeLink, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with APPLIED status. The unique
// constraint on (job_id, user_id) turns a double apply into ErrAlreadyApplied.
func (r *jobApplicationRepository) Create(ctx context.Context, application *models.JobApplication) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO job_applications (job_id, user_id, resume_link, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		application.JobID, application.UserID, application.ResumeLink,
		models.ApplicationApplied).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "job_applications_job_id_user_id_key") {
			return 0, apperrors.ErrAlreadyApplied
		}
		return 0, fmt.Errorf("error creating job application: %w", err)
	}
	return id, nil
}

// GetByID retrieves an application by its ID
func (r *jobApplicationRepository) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+jobApplicationColumns+" FROM job_applications WHERE id = $1", id)

	application, err := scanJobApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving job application: %w", err)
	}
	return application, nil
}

// GetByJobAndUser retrieves a user's application for a job
func (r *jobApplicationRepository) GetByJobAndUser(ctx context.Context, jobID, userID int64) (*models.JobApplication, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+jobApplicationColumns+" FROM job_applications WHERE job_id = $1 AND user_id = $2",
		jobID, userID)

	application, err := scanJobApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving job application: %w", err)
	}
	return application, nil
}

// GetByJobID retrieves all applications for a job, oldest first
func (r *jobApplicationRepository) GetByJobID(ctx context.Context, jobID int64) ([]*models.JobApplication, error) {
	return r.list(ctx, squirrel.Eq{"job_id": jobID})
}

// GetByUserID retrieves all applications submitted by a user
func (r *jobApplicationRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *jobApplicationRepository) list(ctx context.Context, cond squirrel.Eq) ([]*models.JobApplication, error) {
	sql, args, err := r.sb.Select(jobApplicationColumns).
		From("job_applications").
		Where(cond).
		OrderBy("applied_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var applications []*models.JobApplication
	for rows.Next() {
		application, err := scanJobApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		applications = append(applications, application)
	}

	return applications, nil
}

// UpdateStatus changes an application's status
func (r *jobApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	commandTag, err := r.db.Exec(ctx,
		"UPDATE job_applications SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("error updating job application: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete withdraws a user's application for a job
func (r *jobApplicationRepository) Delete(ctx context.Context, jobID, userID int64) error {
	commandTag, err := r.db.Exec(ctx,
		"DELETE FROM job_applications WHERE job_id = $1 AND user_id = $2",
		jobID, userID)
	if err != nil {
		return fmt.Errorf("error deleting job application: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
