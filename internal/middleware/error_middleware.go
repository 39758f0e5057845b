package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")

	case errors.Is(err, apperrors.ErrAlreadyMember):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Already a member")

	case errors.Is(err, apperrors.ErrRequestPending):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "A pending join request already exists")

	case errors.Is(err, apperrors.ErrTeamFull):
		respondError(c, http.StatusConflict, dto.ErrorCodeTeamFull, "Team is already at maximum capacity")

	case errors.Is(err, apperrors.ErrLastLeader):
		respondError(c, http.StatusConflict, dto.ErrorCodeLastLeader, "Operation would leave the team without a leader")

	case errors.Is(err, apperrors.ErrAlreadyInTeam):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Already in a team for this event")

	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Already registered for this event")

	case errors.Is(err, apperrors.ErrNotRegistered):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not registered for this event")

	case errors.Is(err, apperrors.ErrEventStarted):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Event has already started")

	case errors.Is(err, apperrors.ErrNotTeamBased):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Event is not team based")

	case errors.Is(err, apperrors.ErrAlreadyApplied):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Already applied to this job")

	case errors.Is(err, apperrors.ErrDeadlinePassed):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, "Application deadline has passed")

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeConflict, messageOf(err, "Conflict"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOf(err, "Validation failed"))

	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, messageOf(err, "Bad request"))

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOf prefers the wrapped CustomError message over the generic fallback
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
