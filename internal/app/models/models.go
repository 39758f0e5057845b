package models

// UserRole defines the user role type
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleFaculty UserRole = "FACULTY"
	RoleAdmin   UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known user roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// ClubMemberRole defines a user's role within a club
type ClubMemberRole string

const (
	ClubRoleMember ClubMemberRole = "MEMBER"
	ClubRoleAdmin  ClubMemberRole = "ADMIN"
)

// TeamMemberRole defines a user's role within a team
type TeamMemberRole string

const (
	TeamRoleMember TeamMemberRole = "MEMBER"
	TeamRoleLeader TeamMemberRole = "LEADER"
)

// RequestStatus defines the lifecycle state of a join request
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

// RegistrationStatus defines the state of an event registration
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "REGISTERED"
	RegistrationAttended   RegistrationStatus = "ATTENDED"
)

// EventMode defines how an event is held
type EventMode string

const (
	EventModeOnline  EventMode = "ONLINE"
	EventModeOffline EventMode = "OFFLINE"
	EventModeHybrid  EventMode = "HYBRID"
)

// ApplicationStatus defines the lifecycle state of a job application
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "APPLIED"
	ApplicationReviewed  ApplicationStatus = "REVIEWED"
	ApplicationInterview ApplicationStatus = "INTERVIEW"
	ApplicationOffered   ApplicationStatus = "OFFERED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
)

// Valid reports whether the status is one of the known application states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationReviewed, ApplicationInterview, ApplicationOffered, ApplicationRejected:
		return true
	}
	return false
}
