package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              UserRepository
	TokenRepository             TokenRepository
	ClubRepository              ClubRepository
	ClubMemberRepository        ClubMemberRepository
	ClubJoinRequestRepository   ClubJoinRequestRepository
	EventRepository             EventRepository
	EventRegistrationRepository EventRegistrationRepository
	TeamRepository              TeamRepository
	TeamMemberRepository        TeamMemberRepository
	TeamJoinRequestRepository   TeamJoinRequestRepository
	JobRepository               JobRepository
	JobApplicationRepository    JobApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		TokenRepository:             NewTokenRepository(db),
		ClubRepository:              NewClubRepository(db),
		ClubMemberRepository:        NewClubMemberRepository(db),
		ClubJoinRequestRepository:   NewClubJoinRequestRepository(db),
		EventRepository:             NewEventRepository(db),
		EventRegistrationRepository: NewEventRegistrationRepository(db),
		TeamRepository:              NewTeamRepository(db),
		TeamMemberRepository:        NewTeamMemberRepository(db),
		TeamJoinRequestRepository:   NewTeamJoinRequestRepository(db),
		JobRepository:               NewJobRepository(db),
		JobApplicationRepository:    NewJobApplicationRepository(db),
	}
}
