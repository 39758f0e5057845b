package dto

import "time"

// CreateTeamRequest represents a request to create a team for an event
type CreateTeamRequest struct {
	Name         string   `json:"name" binding:"required" example:"Null Pointers"`
	Description  string   `json:"description"`
	SkillsNeeded []string `json:"skillsNeeded,omitempty"`
	IsOpen       bool     `json:"isOpen"`
	MaxMembers   int      `json:"maxMembers" binding:"required,min=1" example:"4"`
}

// UpdateTeamRequest represents a request to update a team
type UpdateTeamRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	SkillsNeeded []string `json:"skillsNeeded,omitempty"`
	IsOpen       *bool    `json:"isOpen,omitempty"`
}

// ChangeRoleRequest carries a promote/demote decision for a team member
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=MEMBER LEADER" example:"LEADER"`
}

// TeamResponse is the standard team projection
type TeamResponse struct {
	ID           int64     `json:"id" example:"1"`
	EventID      int64     `json:"eventId" example:"7"`
	Name         string    `json:"name" example:"Null Pointers"`
	Description  string    `json:"description"`
	SkillsNeeded []string  `json:"skillsNeeded,omitempty"`
	IsOpen       bool      `json:"isOpen"`
	MaxMembers   int       `json:"maxMembers" example:"4"`
	MemberCount  int       `json:"memberCount" example:"3"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TeamListResponse wraps a paginated list of teams
type TeamListResponse struct {
	Teams          []TeamResponse `json:"teams"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// TeamMemberResponse is the projection of a team membership row
type TeamMemberResponse struct {
	ID       int64              `json:"id"`
	UserID   int64              `json:"userId"`
	Role     string             `json:"role" enums:"MEMBER,LEADER"`
	JoinedAt time.Time          `json:"joinedAt"`
	User     *UserBasicResponse `json:"user,omitempty"`
}

// TeamJoinRequestResponse is the projection of a team join request row
type TeamJoinRequestResponse struct {
	ID        int64              `json:"id"`
	TeamID    int64              `json:"teamId"`
	UserID    int64              `json:"userId"`
	Status    string             `json:"status" enums:"PENDING,ACCEPTED,REJECTED"`
	CreatedAt time.Time          `json:"createdAt"`
	User      *UserBasicResponse `json:"user,omitempty"`
}

// TeamDetailResponse extends TeamResponse with members and the caller's relationship
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
	// MembershipRole is the caller's team role, empty when not a member
	MembershipRole string `json:"membershipRole,omitempty" enums:"MEMBER,LEADER"`
	// JoinRequestStatus is the caller's latest join request status, empty when none
	JoinRequestStatus string `json:"joinRequestStatus,omitempty" enums:"PENDING,ACCEPTED,REJECTED"`
}
