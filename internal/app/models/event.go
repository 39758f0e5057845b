package models

import "time"

// Event represents a campus event users can register for
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	EventMode     EventMode `json:"eventMode" db:"event_mode"`
	Location      *string   `json:"location,omitempty" db:"location"`
	StartDatetime time.Time `json:"startDatetime" db:"start_datetime"`
	EndDatetime   time.Time `json:"endDatetime" db:"end_datetime"`
	IsTeamBased   bool      `json:"isTeamBased" db:"is_team_based"`
	MaxTeamSize   *int      `json:"maxTeamSize,omitempty" db:"max_team_size"`
	BannerURL     *string   `json:"bannerUrl,omitempty" db:"banner_url"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Creator *User `json:"creator,omitempty"`
}

// EventRegistration represents a user's registration for an event
type EventRegistration struct {
	ID           int64              `json:"id" db:"id"`
	EventID      int64              `json:"eventId" db:"event_id"`
	UserID       int64              `json:"userId" db:"user_id"`
	Status       RegistrationStatus `json:"status" db:"status"`
	RegisteredAt time.Time          `json:"registeredAt" db:"registered_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
