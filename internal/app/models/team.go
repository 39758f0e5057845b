package models

import "time"

// Team represents a per-event, capacity-bounded group with a leader/member hierarchy
type Team struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	SkillsNeeded []string  `json:"skillsNeeded,omitempty" db:"skills_needed"`
	IsOpen       bool      `json:"isOpen" db:"is_open"`
	MaxMembers   int       `json:"maxMembers" db:"max_members"`
	CreatedBy    int64     `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Event   *Event        `json:"event,omitempty"`
	Members []*TeamMember `json:"members,omitempty"`
}

// TeamMember represents a user's membership in a team
type TeamMember struct {
	ID       int64          `json:"id" db:"id"`
	TeamID   int64          `json:"teamId" db:"team_id"`
	UserID   int64          `json:"userId" db:"user_id"`
	Role     TeamMemberRole `json:"role" db:"role"`
	JoinedAt time.Time      `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// TeamJoinRequest represents a pending proposal by a user to join a team
type TeamJoinRequest struct {
	ID        int64         `json:"id" db:"id"`
	TeamID    int64         `json:"teamId" db:"team_id"`
	UserID    int64         `json:"userId" db:"user_id"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
