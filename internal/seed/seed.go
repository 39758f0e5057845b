package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushub/backend/internal/app/models"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/config"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if no user owns the
// configured admin email yet. Runs after migrations on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@campushub.app")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "ChangeMe123!")

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", adminEmail).Msg("Default admin already present, skipping seed")
		return nil
	}

	hash, err := pkgAuth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &appModels.User{
		Email:     adminEmail,
		Password:  hash,
		FirstName: "Platform",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Int64("userId", id).Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
