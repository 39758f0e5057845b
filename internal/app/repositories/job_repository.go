package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// JobRepository defines the interface for job posting database operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	GetAll(ctx context.Context, filter *dto.JobFilterRequest) ([]*models.Job, int64, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) JobRepository {
	return &jobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const jobColumns = "id, title, description, company, job_type, eligibility, deadline, posted_by, created_at, updated_at"

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.JobType,
		&j.Eligibility, &j.Deadline, &j.PostedBy, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new job posting
func (r *jobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (title, description, company, job_type, eligibility, deadline, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		job.Title, job.Description, job.Company, job.JobType,
		job.Eligibility, job.Deadline, job.PostedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating job: %w", err)
	}
	return id, nil
}

// GetByID retrieves a job posting by its ID
func (r *jobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// GetAll retrieves job postings with optional filters and pagination
func (r *jobRepository) GetAll(ctx context.Context, filter *dto.JobFilterRequest) ([]*models.Job, int64, error) {
	query := r.sb.Select(jobColumns).From("jobs")
	countQuery := r.sb.Select("COUNT(*)").From("jobs")

	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"title": like},
			squirrel.ILike{"company": like},
		}
		query = query.Where(cond)
		countQuery = countQuery.Where(cond)
	}
	if filter.JobType != nil {
		query = query.Where(squirrel.Eq{"job_type": *filter.JobType})
		countQuery = countQuery.Where(squirrel.Eq{"job_type": *filter.JobType})
	}
	if filter.OpenOnly {
		cond := squirrel.Expr("deadline > NOW()")
		query = query.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	var total int64
	countSql, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	sql, args, err := query.OrderBy("deadline ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, total, nil
}

// Update modifies an existing job posting
func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET title = $1, description = $2, company = $3, job_type = $4,
		    eligibility = $5, deadline = $6, updated_at = NOW()
		WHERE id = $7`,
		job.Title, job.Description, job.Company, job.JobType,
		job.Eligibility, job.Deadline, job.ID)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete removes a job posting. Applications are removed by the
// ON DELETE CASCADE foreign key.
func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	commandTag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
