package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// AuthMiddleware handles authentication and role checks
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and loads the authenticated user into
// the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Unknown user")
			return
		}
		if !user.IsActive {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// RoleRequired allows only the given platform roles through. Must run after
// JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		for _, role := range roles {
			if user.RoleType == role {
				c.Next()
				return
			}
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Insufficient permissions")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// CurrentUser returns the authenticated user, or nil when JWTAuth did not run
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
