package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
)

// parseIDParam reads an int64 path parameter, responding 400 on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// respondBindingError maps a request binding failure to a 400 response
func respondBindingError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
