package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
)

func setupAuthService() (AuthService, *mockUserRepo, *mockTokenRepo) {
	userRepo := newMockUserRepo()
	tokenRepo := newMockTokenRepo()
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       "test-secret-key-for-unit-testing",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
	svc := NewAuthService(userRepo, tokenRepo, jwtService, zerolog.Nop())
	return svc, userRepo, tokenRepo
}

func registerTestUser(t *testing.T, svc AuthService, email string) *dto.TokenResponse {
	t.Helper()
	tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		RoleType:  string(models.RoleStudent),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return tokens
}

func TestRegister_IssuesTokenPair(t *testing.T) {
	svc, _, _ := setupAuthService()

	tokens := registerTestUser(t, svc, "student@campus.edu")
	if tokens.AccessToken == "" {
		t.Error("access token should not be empty")
	}
	if tokens.RefreshToken == "" {
		t.Error("refresh token should not be empty")
	}
	if tokens.User == nil || tokens.User.Email != "student@campus.edu" {
		t.Errorf("expected registered user in response, got %+v", tokens.User)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := setupAuthService()
	registerTestUser(t, svc, "student@campus.edu")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "student@campus.edu",
		Password:  "password123",
		FirstName: "Other",
		LastName:  "User",
		RoleType:  string(models.RoleStudent),
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
	}
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:     "admin@campus.edu",
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		RoleType:  string(models.RoleAdmin),
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("self-registration as ADMIN should be rejected, got: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _, _ := setupAuthService()
	registerTestUser(t, svc, "student@campus.edu")

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@campus.edu",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("login should issue a full token pair")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := setupAuthService()
	registerTestUser(t, svc, "student@campus.edu")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@campus.edu",
		Password: "not-the-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService()

	// Unknown emails and wrong passwords are indistinguishable to the caller
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, userRepo, _ := setupAuthService()
	registerTestUser(t, svc, "student@campus.edu")
	user, _ := userRepo.GetByEmail(context.Background(), "student@campus.edu")
	user.IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "student@campus.edu",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got: %v", err)
	}
}

func TestRefreshToken_RotatesPair(t *testing.T) {
	svc, _, tokenRepo := setupAuthService()
	tokens := registerTestUser(t, svc, "student@campus.edu")

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("refresh should issue a new token pair")
	}

	// The old refresh token is revoked on rotation
	if _, err := tokenRepo.GetTokenUser(context.Background(), tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("expected old refresh token to be revoked, got: %v", err)
	}
}

func TestRefreshToken_Unknown(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.RefreshToken(context.Background(), "no-such-token")
	if !errors.Is(err, apperrors.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound, got: %v", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, tokenRepo := setupAuthService()
	tokens := registerTestUser(t, svc, "student@campus.edu")

	if err := svc.Logout(context.Background(), tokens.RefreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := tokenRepo.GetTokenUser(context.Background(), tokens.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("expected revoked token after logout, got: %v", err)
	}
}
