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

// TeamJoinRequestRepository defines the interface for team join request database operations
type TeamJoinRequestRepository interface {
	Create(ctx context.Context, request *models.TeamJoinRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TeamJoinRequest, error)
	HasPending(ctx context.Context, teamID, userID int64) (bool, error)
	GetPendingByTeamID(ctx context.Context, teamID int64) ([]*models.TeamJoinRequest, error)
	GetLatestStatusForUser(ctx context.Context, teamID, userID int64) (*models.RequestStatus, error)
	UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error
}

type teamJoinRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamJoinRequestRepository creates a new TeamJoinRequestRepository
func NewTeamJoinRequestRepository(db *pgxpool.Pool) TeamJoinRequestRepository {
	return &teamJoinRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const teamJoinRequestColumns = "id, team_id, user_id, status, created_at, updated_at"

func scanTeamJoinRequest(row pgx.Row) (*models.TeamJoinRequest, error) {
	var r models.TeamJoinRequest
	err := row.Scan(&r.ID, &r.TeamID, &r.UserID, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new join request with PENDING status
func (r *teamJoinRequestRepository) Create(ctx context.Context, request *models.TeamJoinRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO team_join_requests (team_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		request.TeamID, request.UserID, models.RequestPending).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "team_join_requests_pending_key") {
			return 0, apperrors.ErrRequestPending
		}
		return 0, fmt.Errorf("error creating team join request: %w", err)
	}
	return id, nil
}

// GetByID retrieves a join request by its ID
func (r *teamJoinRequestRepository) GetByID(ctx context.Context, id int64) (*models.TeamJoinRequest, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+teamJoinRequestColumns+" FROM team_join_requests WHERE id = $1", id)

	request, err := scanTeamJoinRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving team join request: %w", err)
	}
	return request, nil
}

// HasPending reports whether the user already has a pending request for the team
func (r *teamJoinRequestRepository) HasPending(ctx context.Context, teamID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM team_join_requests
			WHERE team_id = $1 AND user_id = $2 AND status = $3
		)`,
		teamID, userID, models.RequestPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking pending team join request: %w", err)
	}
	return exists, nil
}

// GetPendingByTeamID retrieves all pending join requests for a team, oldest first
func (r *teamJoinRequestRepository) GetPendingByTeamID(ctx context.Context, teamID int64) ([]*models.TeamJoinRequest, error) {
	sql, args, err := r.sb.Select(teamJoinRequestColumns).
		From("team_join_requests").
		Where(squirrel.Eq{"team_id": teamID, "status": models.RequestPending}).
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

	var requests []*models.TeamJoinRequest
	for rows.Next() {
		request, err := scanTeamJoinRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GetLatestStatusForUser returns the status of the user's most recent request
// for the team, or nil when the user never requested to join
func (r *teamJoinRequestRepository) GetLatestStatusForUser(ctx context.Context, teamID, userID int64) (*models.RequestStatus, error) {
	var status models.RequestStatus
	err := r.db.QueryRow(ctx, `
		SELECT status FROM team_join_requests
		WHERE team_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1`,
		teamID, userID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving team join request status: %w", err)
	}
	return &status, nil
}

// UpdateStatus transitions a pending request to ACCEPTED or REJECTED.
// Already resolved requests return ErrResourceNotFound.
func (r *teamJoinRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE team_join_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`,
		status, id, models.RequestPending)
	if err != nil {
		return fmt.Errorf("error updating team join request: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
