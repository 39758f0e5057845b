package models

import "time"

// Club represents a persistent campus community with an admin-moderated membership list
type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	LogoURL     *string   `json:"logoUrl,omitempty" db:"logo_url"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Creator *User         `json:"creator,omitempty"`
	Members []*ClubMember `json:"members,omitempty"`
}

// ClubMember represents a user's membership in a club
type ClubMember struct {
	ID       int64          `json:"id" db:"id"`
	ClubID   int64          `json:"clubId" db:"club_id"`
	UserID   int64          `json:"userId" db:"user_id"`
	Role     ClubMemberRole `json:"role" db:"role"`
	JoinedAt time.Time      `json:"joinedAt" db:"joined_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}

// ClubJoinRequest represents a pending proposal by a user to join a club
type ClubJoinRequest struct {
	ID        int64         `json:"id" db:"id"`
	ClubID    int64         `json:"clubId" db:"club_id"`
	UserID    int64         `json:"userId" db:"user_id"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
