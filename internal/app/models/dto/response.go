package dto

import "time"

// APIResponse provides the standard envelope for all API responses
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope around the given payload
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// PaginationInfo carries paging metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// UserBasicResponse is the compact user projection embedded in other responses
type UserBasicResponse struct {
	ID              int64   `json:"id" example:"1"`
	FirstName       string  `json:"firstName" example:"John"`
	LastName        string  `json:"lastName" example:"Doe"`
	Email           string  `json:"email" example:"user@campus.edu"`
	ProfilePhotoURL *string `json:"profilePhotoUrl,omitempty"`
}
