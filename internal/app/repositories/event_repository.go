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

// EventRepository defines the interface for event database operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context, filter *dto.EventFilterRequest) ([]*models.Event, int64, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateBanner(ctx context.Context, id int64, bannerURL string) error
	Delete(ctx context.Context, id int64) error
}

type eventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &eventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const eventColumns = "id, title, description, event_mode, location, start_datetime, end_datetime, is_team_based, max_team_size, banner_url, created_by, created_at, updated_at"

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventMode, &e.Location,
		&e.StartDatetime, &e.EndDatetime, &e.IsTeamBased, &e.MaxTeamSize,
		&e.BannerURL, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event into the database
func (r *eventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, event_mode, location, start_datetime, end_datetime, is_team_based, max_team_size, banner_url, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		event.Title, event.Description, event.EventMode, event.Location,
		event.StartDatetime, event.EndDatetime, event.IsTeamBased,
		event.MaxTeamSize, event.BannerURL, event.CreatedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return id, nil
}

// GetByID retrieves an event by its ID
func (r *eventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = $1", id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return event, nil
}

// GetAll retrieves events with optional filters and pagination
func (r *eventRepository) GetAll(ctx context.Context, filter *dto.EventFilterRequest) ([]*models.Event, int64, error) {
	query := r.sb.Select(eventColumns).From("events")
	countQuery := r.sb.Select("COUNT(*)").From("events")

	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"title": like},
			squirrel.ILike{"description": like},
		}
		query = query.Where(cond)
		countQuery = countQuery.Where(cond)
	}
	if filter.Mode != nil {
		query = query.Where(squirrel.Eq{"event_mode": *filter.Mode})
		countQuery = countQuery.Where(squirrel.Eq{"event_mode": *filter.Mode})
	}
	if filter.TeamBased != nil {
		query = query.Where(squirrel.Eq{"is_team_based": *filter.TeamBased})
		countQuery = countQuery.Where(squirrel.Eq{"is_team_based": *filter.TeamBased})
	}
	if filter.UpcomingOnly {
		cond := squirrel.Expr("start_datetime > NOW()")
		query = query.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	var total int64
	countSql, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query = query.OrderBy("start_datetime ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}

	return events, total, nil
}

// Update modifies an existing event
func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, event_mode = $3, location = $4,
		    start_datetime = $5, end_datetime = $6, is_team_based = $7,
		    max_team_size = $8, updated_at = NOW()
		WHERE id = $9`,
		event.Title, event.Description, event.EventMode, event.Location,
		event.StartDatetime, event.EndDatetime, event.IsTeamBased,
		event.MaxTeamSize, event.ID)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// UpdateBanner sets the banner image URL of an event
func (r *eventRepository) UpdateBanner(ctx context.Context, id int64, bannerURL string) error {
	commandTag, err := r.db.Exec(ctx,
		"UPDATE events SET banner_url = $1, updated_at = NOW() WHERE id = $2",
		bannerURL, id)
	if err != nil {
		return fmt.Errorf("error updating event banner: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete removes an event. Registrations, teams and their membership rows
// are removed by the ON DELETE CASCADE foreign keys.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	commandTag, err := r.db.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
