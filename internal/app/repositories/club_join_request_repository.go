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

// ClubJoinRequestRepository defines the interface for club join request database operations
type ClubJoinRequestRepository interface {
	Create(ctx context.Context, request *models.ClubJoinRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ClubJoinRequest, error)
	HasPending(ctx context.Context, clubID, userID int64) (bool, error)
	GetPendingByClubID(ctx context.Context, clubID int64) ([]*models.ClubJoinRequest, error)
	GetLatestStatusForUser(ctx context.Context, clubID, userID int64) (*models.RequestStatus, error)
	UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error
}

type clubJoinRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubJoinRequestRepository creates a new ClubJoinRequestRepository
func NewClubJoinRequestRepository(db *pgxpool.Pool) ClubJoinRequestRepository {
	return &clubJoinRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const clubJoinRequestColumns = "id, club_id, user_id, status, created_at, updated_at"

func scanClubJoinRequest(row pgx.Row) (*models.ClubJoinRequest, error) {
	var r models.ClubJoinRequest
	err := row.Scan(&r.ID, &r.ClubID, &r.UserID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new join request with PENDING status. A partial unique
// index on (club_id, user_id) WHERE status = 'PENDING' backs the duplicate
// check, so a concurrent second request surfaces as ErrRequestPending here.
func (r *clubJoinRequestRepository) Create(ctx context.Context, request *models.ClubJoinRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO club_join_requests (club_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		request.ClubID, request.UserID, models.RequestPending).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "club_join_requests_pending_key") {
			return 0, apperrors.ErrRequestPending
		}
		return 0, fmt.Errorf("error creating club join request: %w", err)
	}
	return id, nil
}

// GetByID retrieves a join request by its ID
func (r *clubJoinRequestRepository) GetByID(ctx context.Context, id int64) (*models.ClubJoinRequest, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+clubJoinRequestColumns+" FROM club_join_requests WHERE id = $1", id)

	request, err := scanClubJoinRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving club join request: %w", err)
	}
	return request, nil
}

// HasPending reports whether the user already has a pending request for the club.
// Rejected requests do not count, the user may request again after a rejection.
func (r *clubJoinRequestRepository) HasPending(ctx context.Context, clubID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM club_join_requests
			WHERE club_id = $1 AND user_id = $2 AND status = $3
		)`,
		clubID, userID, models.RequestPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking pending club join request: %w", err)
	}
	return exists, nil
}

// GetPendingByClubID retrieves all pending join requests for a club, oldest first
func (r *clubJoinRequestRepository) GetPendingByClubID(ctx context.Context, clubID int64) ([]*models.ClubJoinRequest, error) {
	sql, args, err := r.sb.Select(clubJoinRequestColumns).
		From("club_join_requests").
		Where(squirrel.Eq{"club_id": clubID, "status": models.RequestPending}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var requests []*models.ClubJoinRequest
	for rows.Next() {
		request, err := scanClubJoinRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GetLatestStatusForUser returns the status of the user's most recent request
// for the club, or nil when the user never requested to join
func (r *clubJoinRequestRepository) GetLatestStatusForUser(ctx context.Context, clubID, userID int64) (*models.RequestStatus, error) {
	var status models.RequestStatus
	err := r.db.QueryRow(ctx, `
		SELECT status FROM club_join_requests
		WHERE club_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		clubID, userID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving club join request status: %w", err)
	}
	return &status, nil
}

// UpdateStatus transitions a pending request to ACCEPTED or REJECTED.
// Only pending rows match, so a request that was already resolved
// returns ErrResourceNotFound instead of being overwritten.
func (r *clubJoinRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE club_join_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`,
		status, id, models.RequestPending)
	if err != nil {
		return fmt.Errorf("error updating club join request: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
