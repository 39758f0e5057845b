package dto

import "time"

// CreateClubRequest represents a request to create a club
type CreateClubRequest struct {
	Name        string `form:"name" binding:"required" example:"Robotics Club"`
	Description string `form:"description" binding:"required"`
}

// UpdateClubRequest represents a request to update a club
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ClubFilterRequest carries list filters for clubs
type ClubFilterRequest struct {
	Search   *string
	Page     int
	PageSize int
}

// ClubResponse is the standard club projection
type ClubResponse struct {
	ID          int64              `json:"id" example:"1"`
	Name        string             `json:"name" example:"Robotics Club"`
	Description string             `json:"description"`
	LogoURL     *string            `json:"logoUrl,omitempty"`
	CreatedBy   int64              `json:"createdBy" example:"3"`
	Creator     *UserBasicResponse `json:"creator,omitempty"`
	MemberCount int                `json:"memberCount" example:"42"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ClubListResponse wraps a paginated list of clubs
type ClubListResponse struct {
	Clubs          []ClubResponse `json:"clubs"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// ClubMemberResponse is the projection of a club membership row
type ClubMemberResponse struct {
	ID       int64              `json:"id"`
	UserID   int64              `json:"userId"`
	Role     string             `json:"role" enums:"MEMBER,ADMIN"`
	JoinedAt time.Time          `json:"joinedAt"`
	User     *UserBasicResponse `json:"user,omitempty"`
}

// ClubJoinRequestResponse is the projection of a join request row
type ClubJoinRequestResponse struct {
	ID        int64              `json:"id"`
	ClubID    int64              `json:"clubId"`
	UserID    int64              `json:"userId"`
	Status    string             `json:"status" enums:"PENDING,ACCEPTED,REJECTED"`
	CreatedAt time.Time          `json:"createdAt"`
	User      *UserBasicResponse `json:"user,omitempty"`
}

// ClubDetailResponse extends ClubResponse with members and the caller's relationship
type ClubDetailResponse struct {
	ClubResponse
	Members []ClubMemberResponse `json:"members"`
	// MembershipRole is the caller's club role, empty when not a member
	MembershipRole string `json:"membershipRole,omitempty" enums:"MEMBER,ADMIN"`
	// JoinRequestStatus is the caller's latest join request status, empty when none
	JoinRequestStatus string `json:"joinRequestStatus,omitempty" enums:"PENDING,ACCEPTED,REJECTED"`
}

// ResolveRequestRequest carries an accept/reject decision for a join request
type ResolveRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject" example:"accept"`
}
