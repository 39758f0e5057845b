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

// EventRegistrationRepository defines the interface for event registration database operations
type EventRegistrationRepository interface {
	Create(ctx context.Context, eventID, userID int64) (int64, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*models.EventRegistration, error)
	GetByEventID(ctx context.Context, eventID int64) ([]*models.EventRegistration, error)
	UpdateStatus(ctx context.Context, eventID, userID int64, status models.RegistrationStatus) error
	Delete(ctx context.Context, eventID, userID int64) error
	CountByEventID(ctx context.Context, eventID int64) (int, error)
}

type eventRegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRegistrationRepository creates a new EventRegistrationRepository
func NewEventRegistrationRepository(db *pgxpool.Pool) EventRegistrationRepository {
	return &eventRegistrationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a registration row with REGISTERED status. The unique
// constraint on (event_id, user_id) turns a double registration into
// ErrAlreadyRegistered.
func (r *eventRegistrationRepository) Create(ctx context.Context, eventID, userID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO event_registrations (event_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		eventID, userID, models.RegistrationRegistered).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_registrations_event_id_user_id_key") {
			return 0, apperrors.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("error creating event registration: %w", err)
	}
	return id, nil
}

// GetByEventAndUser retrieves a user's registration for an event
func (r *eventRegistrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.db.QueryRow(ctx, `
		SELECT id, event_id, user_id, status, registered_at
		FROM event_registrations
		WHERE event_id = $1 AND user_id = $2`,
		eventID, userID).Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotRegistered
		}
		return nil, fmt.Errorf("error retrieving event registration: %w", err)
	}
	return &reg, nil
}

// GetByEventID retrieves all registrations for an event, oldest first
func (r *eventRegistrationRepository) GetByEventID(ctx context.Context, eventID int64) ([]*models.EventRegistration, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_id", "status", "registered_at").
		From("event_registrations").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("registered_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []*models.EventRegistration
	for rows.Next() {
		var reg models.EventRegistration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		registrations = append(registrations, &reg)
	}

	return registrations, nil
}

// UpdateStatus changes a registration's status
func (r *eventRegistrationRepository) UpdateStatus(ctx context.Context, eventID, userID int64, status models.RegistrationStatus) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE event_registrations SET status = $1
		WHERE event_id = $2 AND user_id = $3`,
		status, eventID, userID)
	if err != nil {
		return fmt.Errorf("error updating event registration: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

// Delete removes a user's registration for an event
func (r *eventRegistrationRepository) Delete(ctx context.Context, eventID, userID int64) error {
	commandTag, err := r.db.Exec(ctx,
		"DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2",
		eventID, userID)
	if err != nil {
		return fmt.Errorf("error deleting event registration: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

// CountByEventID retrieves the number of registrations for an event
func (r *eventRegistrationRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM event_registrations WHERE event_id = $1", eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting event registrations: %w", err)
	}
	return count, nil
}
