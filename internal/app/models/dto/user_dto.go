package dto

import "time"

// UserProfileResponse is the full profile returned for the authenticated user
type UserProfileResponse struct {
	ID              int64      `json:"id" example:"1"`
	Email           string     `json:"email" example:"user@campus.edu"`
	FirstName       string     `json:"firstName" example:"John"`
	LastName        string     `json:"lastName" example:"Doe"`
	RoleType        string     `json:"roleType" example:"STUDENT" enums:"STUDENT,FACULTY,ADMIN"`
	Bio             *string    `json:"bio,omitempty"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}
