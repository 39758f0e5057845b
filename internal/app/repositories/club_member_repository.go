package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
)

// ClubMemberRepository defines the interface for club membership database operations
type ClubMemberRepository interface {
	Add(ctx context.Context, clubID, userID int64, role models.ClubMemberRole) (int64, error)
	GetRole(ctx context.Context, clubID, userID int64) (models.ClubMemberRole, bool, error)
	GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.ClubMember, error)
	GetMemberCountByClubID(ctx context.Context, clubID int64) (int, error)
	GetMemberCountsByClubIDs(ctx context.Context, clubIDs []int64) (map[int64]int, error)
	GetClubIDsByUserID(ctx context.Context, userID int64) ([]int64, error)
}

type clubMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubMemberRepository creates a new ClubMemberRepository
func NewClubMemberRepository(db *pgxpool.Pool) ClubMemberRepository {
	return &clubMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add inserts a membership row. The insert is idempotent: if a row for
// (club, user) already exists it is left untouched and its id returned,
// so accepting the same request twice cannot create two memberships.
func (r *clubMemberRepository) Add(ctx context.Context, clubID, userID int64, role models.ClubMemberRole) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO club_members (club_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (club_id, user_id) DO UPDATE SET role = club_members.role
		RETURNING id`,
		clubID, userID, role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error adding club member: %w", err)
	}
	return id, nil
}

// GetRole returns the member's role and whether a membership exists
func (r *clubMemberRepository) GetRole(ctx context.Context, clubID, userID int64) (models.ClubMemberRole, bool, error) {
	var role models.ClubMemberRole
	err := r.db.QueryRow(ctx, `
		SELECT role FROM club_members WHERE club_id = $1 AND user_id = $2`,
		clubID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error retrieving club role: %w", err)
	}
	return role, true, nil
}

// GetMembersByClubID retrieves all members of a club, newest first
func (r *clubMemberRepository) GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.ClubMember, error) {
	sql, args, err := r.sb.Select("id", "club_id", "user_id", "role", "joined_at").
		From("club_members").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("joined_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []*models.ClubMember
	for rows.Next() {
		var m models.ClubMember
		if err := rows.Scan(&m.ID, &m.ClubID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, &m)
	}

	return members, nil
}

// GetMemberCountByClubID retrieves the number of members for a specific club
func (r *clubMemberRepository) GetMemberCountByClubID(ctx context.Context, clubID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM club_members WHERE club_id = $1", clubID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting club members: %w", err)
	}
	return count, nil
}

// GetMemberCountsByClubIDs retrieves member counts for multiple clubs
func (r *clubMemberRepository) GetMemberCountsByClubIDs(ctx context.Context, clubIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(clubIDs))
	if len(clubIDs) == 0 {
		return counts, nil
	}

	sql, args, err := r.sb.Select("club_id", "COUNT(*)").
		From("club_members").
		Where(squirrel.Eq{"club_id": clubIDs}).
		GroupBy("club_id").
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
		var clubID int64
		var count int
		if err := rows.Scan(&clubID, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[clubID] = count
	}

	return counts, nil
}

// GetClubIDsByUserID retrieves all clubs a user is a member of
func (r *clubMemberRepository) GetClubIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT club_id FROM club_members WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var clubIDs []int64
	for rows.Next() {
		var clubID int64
		if err := rows.Scan(&clubID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubIDs = append(clubIDs, clubID)
	}

	return clubIDs, nil
}
