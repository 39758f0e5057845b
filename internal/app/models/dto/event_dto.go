package dto

import "time"

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required" example:"Spring Hackathon"`
	Description   string    `json:"description" binding:"required"`
	EventMode     string    `json:"eventMode" binding:"required,oneof=ONLINE OFFLINE HYBRID" example:"OFFLINE"`
	Location      *string   `json:"location,omitempty" example:"Main Auditorium"`
	StartDatetime time.Time `json:"startDatetime" binding:"required"`
	EndDatetime   time.Time `json:"endDatetime" binding:"required"`
	IsTeamBased   bool      `json:"isTeamBased"`
	MaxTeamSize   *int      `json:"maxTeamSize,omitempty" binding:"omitempty,min=1" example:"4"`
}

// UpdateEventRequest represents a request to update an event
type UpdateEventRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	EventMode     *string    `json:"eventMode,omitempty" binding:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	Location      *string    `json:"location,omitempty"`
	StartDatetime *time.Time `json:"startDatetime,omitempty"`
	EndDatetime   *time.Time `json:"endDatetime,omitempty"`
}

// EventFilterRequest carries list filters for events
type EventFilterRequest struct {
	Mode        *string
	TeamBased   *bool
	UpcomingOnly bool
	Search      *string
	Page        int
	PageSize    int
}

// EventResponse is the standard event projection
type EventResponse struct {
	ID            int64              `json:"id" example:"1"`
	Title         string             `json:"title" example:"Spring Hackathon"`
	Description   string             `json:"description"`
	EventMode     string             `json:"eventMode" enums:"ONLINE,OFFLINE,HYBRID"`
	Location      *string            `json:"location,omitempty"`
	StartDatetime time.Time          `json:"startDatetime"`
	EndDatetime   time.Time          `json:"endDatetime"`
	IsTeamBased   bool               `json:"isTeamBased"`
	MaxTeamSize   *int               `json:"maxTeamSize,omitempty"`
	BannerURL     *string            `json:"bannerUrl,omitempty"`
	CreatedBy     int64              `json:"createdBy"`
	Creator       *UserBasicResponse `json:"creator,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// EventListResponse wraps a paginated list of events
type EventListResponse struct {
	Events         []EventResponse `json:"events"`
	PaginationInfo PaginationInfo  `json:"pagination"`
}

// EventDetailResponse extends EventResponse with the caller's registration state
type EventDetailResponse struct {
	EventResponse
	// RegistrationStatus is the caller's registration state, empty when not registered
	RegistrationStatus string `json:"registrationStatus,omitempty" enums:"REGISTERED,ATTENDED"`
}

// EventRegistrationResponse is the projection of a registration row
type EventRegistrationResponse struct {
	ID           int64              `json:"id"`
	EventID      int64              `json:"eventId"`
	UserID       int64              `json:"userId"`
	Status       string             `json:"status" enums:"REGISTERED,ATTENDED"`
	RegisteredAt time.Time          `json:"registeredAt"`
	User         *UserBasicResponse `json:"user,omitempty"`
}
