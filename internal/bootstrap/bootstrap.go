package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushub/backend/docs" // Import generated swagger docs
	appControllers "github.com/campushub/backend/internal/app/controllers"
	appMigrations "github.com/campushub/backend/internal/app/migrations"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	appRoutes "github.com/campushub/backend/internal/app/routes"
	appServices "github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	appMiddleware "github.com/campushub/backend/internal/middleware"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/helpers"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService     appServices.AuthService
	UserService     appServices.UserService
	ClubService     appServices.ClubService
	EventService    appServices.EventService
	TeamService     appServices.TeamService
	JobService      appServices.JobService
	AuthController  *appControllers.AuthController
	UserController  *appControllers.UserController
	ClubController  *appControllers.ClubController
	EventController *appControllers.EventController
	TeamController  *appControllers.TeamController
	JobController   *appControllers.JobController
	AuthMiddleware  *appMiddleware.AuthMiddleware
	Repos           *appRepos.Repositories
	JWTService      *pkgAuth.JWTService
	Logger          zerolog.Logger
	FileStorage     *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed runs after migrations; a failure here is logged but not fatal
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving endpoint
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.ClubService = appServices.NewClubService(
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberRepository,
		deps.Repos.ClubJoinRequestRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.EventRegistrationRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.TeamService = appServices.NewTeamService(
		deps.Repos.TeamRepository,
		deps.Repos.TeamMemberRepository,
		deps.Repos.TeamJoinRequestRepository,
		deps.Repos.EventRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.JobService = appServices.NewJobService(
		deps.Repos.JobRepository,
		deps.Repos.JobApplicationRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.JobController = appControllers.NewJobController(deps.JobService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClubController,
		deps.EventController,
		deps.TeamController,
		deps.JobController,
		deps.AuthMiddleware,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
