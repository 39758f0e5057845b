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

// TeamMemberRepository defines the interface for team membership database operations
type TeamMemberRepository interface {
	AddMemberGuarded(ctx context.Context, teamID, userID int64) error
	GetRole(ctx context.Context, teamID, userID int64) (models.TeamMemberRole, bool, error)
	GetMembersByTeamID(ctx context.Context, teamID int64) ([]*models.TeamMember, error)
	GetMemberCountsByTeamIDs(ctx context.Context, teamIDs []int64) (map[int64]int, error)
	CountMembers(ctx context.Context, teamID int64) (int, error)
	CountLeaders(ctx context.Context, teamID int64) (int, error)
	UpdateRole(ctx context.Context, teamID, userID int64, role models.TeamMemberRole) error
	Remove(ctx context.Context, teamID, userID int64) error
	GetUserTeamIDForEvent(ctx context.Context, eventID, userID int64) (int64, bool, error)
}

type teamMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *pgxpool.Pool) TeamMemberRepository {
	return &teamMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AddMemberGuarded inserts a MEMBER row only if the team still has room.
// The team row is locked with SELECT FOR UPDATE before counting, so two
// concurrent accepts for the last seat cannot both slip through. The insert
// is idempotent: if the user already holds a membership in this team the
// call succeeds without touching the row, so a retried accept completes
// instead of failing on the conflict.
func (r *teamMemberRepository) AddMemberGuarded(ctx context.Context, teamID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var maxMembers int
		err := tx.QueryRow(ctx,
			"SELECT max_members FROM teams WHERE id = $1 FOR UPDATE",
			teamID).Scan(&maxMembers)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error locking team row: %w", err)
		}

		var alreadyMember bool
		err = tx.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)",
			teamID, userID).Scan(&alreadyMember)
		if err != nil {
			return fmt.Errorf("error checking existing membership: %w", err)
		}
		if alreadyMember {
			return nil
		}

		var count int
		err = tx.QueryRow(ctx,
			"SELECT COUNT(*) FROM team_members WHERE team_id = $1",
			teamID).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting team members: %w", err)
		}
		if count >= maxMembers {
			return apperrors.ErrTeamFull
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO team_members (team_id, user_id, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (team_id, user_id) DO NOTHING`,
			teamID, userID, models.TeamRoleMember)
		if err != nil {
			return fmt.Errorf("error adding team member: %w", err)
		}
		return nil
	})
}

// GetRole returns the member's role and whether a membership exists
func (r *teamMemberRepository) GetRole(ctx context.Context, teamID, userID int64) (models.TeamMemberRole, bool, error) {
	var role models.TeamMemberRole
	err := r.db.QueryRow(ctx,
		"SELECT role FROM team_members WHERE team_id = $1 AND user_id = $2",
		teamID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error retrieving team role: %w", err)
	}
	return role, true, nil
}

// GetMembersByTeamID retrieves all members of a team, leaders first
func (r *teamMemberRepository) GetMembersByTeamID(ctx context.Context, teamID int64) ([]*models.TeamMember, error) {
	sql, args, err := r.sb.Select("id", "team_id", "user_id", "role", "joined_at").
		From("team_members").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("role DESC", "joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, &m)
	}

	return members, nil
}

// GetMemberCountsByTeamIDs retrieves member counts for multiple teams
func (r *teamMemberRepository) GetMemberCountsByTeamIDs(ctx context.Context, teamIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(teamIDs))
	if len(teamIDs) == 0 {
		return counts, nil
	}

	sql, args, err := r.sb.Select("team_id", "COUNT(*)").
		From("team_members").
		Where(squirrel.Eq{"team_id": teamIDs}).
		GroupBy("team_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID int64
		var count int
		if err := rows.Scan(&teamID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[teamID] = count
	}

	return counts, nil
}

// CountMembers retrieves the number of members in a team
func (r *teamMemberRepository) CountMembers(ctx context.Context, teamID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM team_members WHERE team_id = $1", teamID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting team members: %w", err)
	}
	return count, nil
}

// CountLeaders retrieves the number of leaders in a team
func (r *teamMemberRepository) CountLeaders(ctx context.Context, teamID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM team_members WHERE team_id = $1 AND role = $2",
		teamID, models.TeamRoleLeader).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting team leaders: %w", err)
	}
	return count, nil
}

// UpdateRole changes a member's role
func (r *teamMemberRepository) UpdateRole(ctx context.Context, teamID, userID int64, role models.TeamMemberRole) error {
	commandTag, err := r.db.Exec(ctx,
		"UPDATE team_members SET role = $1 WHERE team_id = $2 AND user_id = $3",
		role, teamID, userID)
	if err != nil {
		return fmt.Errorf("error updating team member role: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Remove deletes a member from a team
func (r *teamMemberRepository) Remove(ctx context.Context, teamID, userID int64) error {
	commandTag, err := r.db.Exec(ctx,
		"DELETE FROM team_members WHERE team_id = $1 AND user_id = $2",
		teamID, userID)
	if err != nil {
		return fmt.Errorf("error removing team member: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// GetUserTeamIDForEvent returns the team the user belongs to within an
// event, if any. Backs the one-team-per-event rule.
func (r *teamMemberRepository) GetUserTeamIDForEvent(ctx context.Context, eventID, userID int64) (int64, bool, error) {
	var teamID int64
	err := r.db.QueryRow(ctx, `
		SELECT tm.team_id
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		WHERE t.event_id = $1 AND tm.user_id = $2`,
		eventID, userID).Scan(&teamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error retrieving user team for event: %w", err)
	}
	return teamID, true, nil
}
