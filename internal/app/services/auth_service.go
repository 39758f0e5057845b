package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account and issues a token pair
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := models.UserRole(req.RoleType)
	if role != models.RoleStudent && role != models.RoleFaculty {
		return nil, apperrors.NewBadRequestError("role must be STUDENT or FACULTY")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  role,
		IsActive:  true,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	s.logger.Info().Int64("userID", userID).Str("email", email).Msg("User registered")

	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists
		s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Old token is revoked before the new pair is stored
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the given refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		User:             toUserBasicResponse(user),
	}, nil
}
