package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// ClubRepository defines the interface for club database operations
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	GetAll(ctx context.Context, search *string, page, pageSize int) ([]*models.Club, int64, error)
	Update(ctx context.Context, id int64, name, description *string) error
	UpdateLogo(ctx context.Context, id int64, logoURL *string) error
	Delete(ctx context.Context, id int64) error
}

type clubRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) ClubRepository {
	return &clubRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const clubColumns = "id, name, description, logo_url, created_by, created_at, updated_at"

func scanClub(row pgx.Row) (*models.Club, error) {
	club := &models.Club{}
	err := row.Scan(
		&club.ID, &club.Name, &club.Description, &club.LogoURL,
		&club.CreatedBy, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return club, nil
}

// Create inserts a new club
func (r *clubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	sql, args, err := r.sb.Insert("clubs").
		Columns("name", "description", "logo_url", "created_by").
		Values(club.Name, club.Description, club.LogoURL, club.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "clubs_name_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating club: %w", err)
	}

	return id, nil
}

// GetByID retrieves a club by ID
func (r *clubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	club, err := scanClub(r.db.QueryRow(ctx,
		"SELECT "+clubColumns+" FROM clubs WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving club: %w", err)
	}
	return club, nil
}

// GetAll retrieves clubs with optional search and pagination
func (r *clubRepository) GetAll(ctx context.Context, search *string, page, pageSize int) ([]*models.Club, int64, error) {
	base := r.sb.Select(clubColumns).From("clubs")
	countQuery := r.sb.Select("COUNT(*)").From("clubs")

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting clubs: %w", err)
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := base.
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, total, nil
}

// Update updates a club's mutable fields
func (r *clubRepository) Update(ctx context.Context, id int64, name, description *string) error {
	update := r.sb.Update("clubs").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id})

	if name != nil {
		update = update.Set("name", *name)
	}
	if description != nil {
		update = update.Set("description", *description)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating club: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// UpdateLogo sets or clears a club's logo URL
func (r *clubRepository) UpdateLogo(ctx context.Context, id int64, logoURL *string) error {
	sql, args, err := r.sb.Update("clubs").
		Set("logo_url", logoURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating club logo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a club. Memberships and join requests are removed by
// the ON DELETE CASCADE constraints on the dependent tables.
func (r *clubRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting club: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
