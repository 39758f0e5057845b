package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// TeamRepository defines the interface for team database operations
type TeamRepository interface {
	CreateWithLeader(ctx context.Context, team *models.Team) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetByEventID(ctx context.Context, eventID int64, page, pageSize int) ([]*models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int64) error
}

type teamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *pgxpool.Pool) TeamRepository {
	return &teamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const teamColumns = "id, event_id, name, description, skills_needed, is_open, max_members, created_by, created_at, updated_at"

func scanTeam(row pgx.Row) (*models.Team, error) {
	var t models.Team
	err := row.Scan(&t.ID, &t.EventID, &t.Name, &t.Description, &t.SkillsNeeded,
		&t.IsOpen, &t.MaxMembers, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateWithLeader inserts the team and its creator's LEADER membership in
// one transaction, so a team can never exist without a leader.
func (r *teamRepository) CreateWithLeader(ctx context.Context, team *models.Team) (int64, error) {
	var teamID int64
	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO teams (event_id, name, description, skills_needed, is_open, max_members, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			team.EventID, team.Name, team.Description, team.SkillsNeeded,
			team.IsOpen, team.MaxMembers, team.CreatedBy).Scan(&teamID)
		if err != nil {
			return fmt.Errorf("error creating team: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO team_members (team_id, user_id, role)
			VALUES ($1, $2, $3)`,
			teamID, team.CreatedBy, models.TeamRoleLeader)
		if err != nil {
			return fmt.Errorf("error adding team leader: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return teamID, nil
}

// GetByID retrieves a team by its ID
func (r *teamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+teamColumns+" FROM teams WHERE id = $1", id)

	team, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving team: %w", err)
	}
	return team, nil
}

// GetByEventID retrieves teams of an event with pagination
func (r *teamRepository) GetByEventID(ctx context.Context, eventID int64, page, pageSize int) ([]*models.Team, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM teams WHERE event_id = $1", eventID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting teams: %w", err)
	}

	offset := (page - 1) * pageSize
	sql, args, err := r.sb.Select(teamColumns).
		From("teams").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at ASC").
		Limit(uint64(pageSize)).
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

	var teams []*models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, total, nil
}

// Update modifies an existing team
func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	commandTag, err := r.db.Exec(ctx, `
		UPDATE teams
		SET name = $1, description = $2, skills_needed = $3, is_open = $4, updated_at = NOW()
		WHERE id = $5`,
		team.Name, team.Description, team.SkillsNeeded, team.IsOpen, team.ID)
	if err != nil {
		return fmt.Errorf("error updating team: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete removes a team. Membership rows and join requests are removed
// by the ON DELETE CASCADE foreign keys.
func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	commandTag, err := r.db.Exec(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting team: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
