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

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName *string, bio *string) error
	UpdateProfilePhotoURL(ctx context.Context, userID int64, photoURL *string) error
	UpdateLastLogin(ctx context.Context, userID int64) error
}

type userRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, email, password, first_name, last_name, role_type, is_active, bio, profile_photo_url, last_login_at, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.RoleType, &user.IsActive, &user.Bio, &user.ProfilePhotoURL,
		&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "first_name", "last_name", "role_type", "is_active").
		Values(user.Email, user.Password, user.FirstName, user.LastName, user.RoleType, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByIDs retrieves multiple users keyed by their ID
func (r *userRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	users := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": ids}).
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
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users[user.ID] = user
	}

	return users, nil
}

// EmailExists checks if an email already exists
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates a user's basic profile information
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, firstName, lastName *string, bio *string) error {
	update := r.sb.Update("users").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID})

	if firstName != nil {
		update = update.Set("first_name", *firstName)
	}
	if lastName != nil {
		update = update.Set("last_name", *lastName)
	}
	if bio != nil {
		update = update.Set("bio", *bio)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateProfilePhotoURL updates the profile photo URL for a given user
func (r *userRepository) UpdateProfilePhotoURL(ctx context.Context, userID int64, photoURL *string) error {
	sql, args, err := r.sb.Update("users").
		Set("profile_photo_url", photoURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login time
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE users SET last_login_at = $1 WHERE id = $2", time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
