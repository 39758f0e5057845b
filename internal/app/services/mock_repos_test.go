package services

import (
	"context"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// Map backed fakes mirroring the error semantics of the real repositories.

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepo) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	} else if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	m.users[user.ID] = user
	return user
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	m.add(user)
	return user.ID, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*models.User, error) {
	result := make(map[int64]*models.User)
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (m *mockUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, userID int64, firstName, lastName *string, bio *string) error {
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	if bio != nil {
		u.Bio = bio
	}
	return nil
}

func (m *mockUserRepo) UpdateProfilePhotoURL(_ context.Context, userID int64, photoURL *string) error {
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.ProfilePhotoURL = photoURL
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

// ── Mock TokenRepository ──

type mockTokenEntry struct {
	userID    int64
	expiry    time.Time
	isRevoked bool
}

type mockTokenRepo struct {
	tokens map[string]*mockTokenEntry
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*mockTokenEntry)}
}

func (m *mockTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	m.tokens[token] = &mockTokenEntry{userID: userID, expiry: expiryDate}
	return nil
}

func (m *mockTokenRepo) GetTokenUser(_ context.Context, token string) (int64, error) {
	entry, ok := m.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if entry.isRevoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if time.Now().After(entry.expiry) {
		return 0, apperrors.ErrTokenExpired
	}
	return entry.userID, nil
}

func (m *mockTokenRepo) RevokeToken(_ context.Context, token string) error {
	entry, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	entry.isRevoked = true
	return nil
}

func (m *mockTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, entry := range m.tokens {
		if entry.userID == userID {
			entry.isRevoked = true
		}
	}
	return nil
}

func (m *mockTokenRepo) DeleteExpiredTokens(_ context.Context) (int64, error) {
	var deleted int64
	for token, entry := range m.tokens {
		if time.Now().After(entry.expiry) {
			delete(m.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}

// ── Mock ClubRepository ──

type mockClubRepo struct {
	clubs  map[int64]*models.Club
	nextID int64
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{clubs: make(map[int64]*models.Club), nextID: 1}
}

func (m *mockClubRepo) Create(_ context.Context, club *models.Club) (int64, error) {
	for _, c := range m.clubs {
		if c.Name == club.Name {
			return 0, apperrors.ErrResourceAlreadyExists
		}
	}
	club.ID = m.nextID
	m.nextID++
	m.clubs[club.ID] = club
	return club.ID, nil
}

func (m *mockClubRepo) GetByID(_ context.Context, id int64) (*models.Club, error) {
	if c, ok := m.clubs[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockClubRepo) GetAll(_ context.Context, _ *string, page, pageSize int) ([]*models.Club, int64, error) {
	var all []*models.Club
	for _, c := range m.clubs {
		all = append(all, c)
	}
	return all, int64(len(all)), nil
}

func (m *mockClubRepo) Update(_ context.Context, id int64, name, description *string) error {
	c, ok := m.clubs[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
	return nil
}

func (m *mockClubRepo) UpdateLogo(_ context.Context, id int64, logoURL *string) error {
	c, ok := m.clubs[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	c.LogoURL = logoURL
	return nil
}

func (m *mockClubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.clubs[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.clubs, id)
	return nil
}

// ── Mock ClubMemberRepository ──

type mockClubMemberRepo struct {
	members map[int64]*models.ClubMember
	nextID  int64
}

func newMockClubMemberRepo() *mockClubMemberRepo {
	return &mockClubMemberRepo{members: make(map[int64]*models.ClubMember), nextID: 1}
}

func (m *mockClubMemberRepo) Add(_ context.Context, clubID, userID int64, role models.ClubMemberRole) (int64, error) {
	for _, member := range m.members {
		if member.ClubID == clubID && member.UserID == userID {
			return member.ID, nil
		}
	}
	member := &models.ClubMember{ID: m.nextID, ClubID: clubID, UserID: userID, Role: role, JoinedAt: time.Now()}
	m.nextID++
	m.members[member.ID] = member
	return member.ID, nil
}

func (m *mockClubMemberRepo) GetRole(_ context.Context, clubID, userID int64) (models.ClubMemberRole, bool, error) {
	for _, member := range m.members {
		if member.ClubID == clubID && member.UserID == userID {
			return member.Role, true, nil
		}
	}
	return "", false, nil
}

func (m *mockClubMemberRepo) GetMembersByClubID(_ context.Context, clubID int64) ([]*models.ClubMember, error) {
	var result []*models.ClubMember
	for _, member := range m.members {
		if member.ClubID == clubID {
			result = append(result, member)
		}
	}
	return result, nil
}

func (m *mockClubMemberRepo) GetMemberCountByClubID(_ context.Context, clubID int64) (int, error) {
	count := 0
	for _, member := range m.members {
		if member.ClubID == clubID {
			count++
		}
	}
	return count, nil
}

func (m *mockClubMemberRepo) GetMemberCountsByClubIDs(_ context.Context, clubIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	for _, id := range clubIDs {
		for _, member := range m.members {
			if member.ClubID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (m *mockClubMemberRepo) GetClubIDsByUserID(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, member := range m.members {
		if member.UserID == userID {
			ids = append(ids, member.ClubID)
		}
	}
	return ids, nil
}

// ── Mock ClubJoinRequestRepository ──

type mockClubJoinRequestRepo struct {
	requests map[int64]*models.ClubJoinRequest
	nextID   int64
}

func newMockClubJoinRequestRepo() *mockClubJoinRequestRepo {
	return &mockClubJoinRequestRepo{requests: make(map[int64]*models.ClubJoinRequest), nextID: 1}
}

func (m *mockClubJoinRequestRepo) Create(_ context.Context, request *models.ClubJoinRequest) (int64, error) {
	for _, r := range m.requests {
		if r.ClubID == request.ClubID && r.UserID == request.UserID && r.Status == models.RequestPending {
			return 0, apperrors.ErrRequestPending
		}
	}
	request.ID = m.nextID
	m.nextID++
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	m.requests[request.ID] = request
	return request.ID, nil
}

func (m *mockClubJoinRequestRepo) GetByID(_ context.Context, id int64) (*models.ClubJoinRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockClubJoinRequestRepo) HasPending(_ context.Context, clubID, userID int64) (bool, error) {
	for _, r := range m.requests {
		if r.ClubID == clubID && r.UserID == userID && r.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClubJoinRequestRepo) GetPendingByClubID(_ context.Context, clubID int64) ([]*models.ClubJoinRequest, error) {
	var result []*models.ClubJoinRequest
	for _, r := range m.requests {
		if r.ClubID == clubID && r.Status == models.RequestPending {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockClubJoinRequestRepo) GetLatestStatusForUser(_ context.Context, clubID, userID int64) (*models.RequestStatus, error) {
	var latest *models.ClubJoinRequest
	for _, r := range m.requests {
		if r.ClubID == clubID && r.UserID == userID {
			if latest == nil || r.ID > latest.ID {
				latest = r
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	status := latest.Status
	return &status, nil
}

func (m *mockClubJoinRequestRepo) UpdateStatus(_ context.Context, id int64, status models.RequestStatus) error {
	r, ok := m.requests[id]
	if !ok || r.Status != models.RequestPending {
		return apperrors.ErrResourceNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[int64]*models.Event
	nextID int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[int64]*models.Event), nextID: 1}
}

func (m *mockEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	event.ID = m.nextID
	m.nextID++
	m.events[event.ID] = event
	return event.ID, nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockEventRepo) GetAll(_ context.Context, _ *dto.EventFilterRequest) ([]*models.Event, int64, error) {
	var all []*models.Event
	for _, e := range m.events {
		all = append(all, e)
	}
	return all, int64(len(all)), nil
}

func (m *mockEventRepo) Update(_ context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) UpdateBanner(_ context.Context, id int64, bannerURL string) error {
	e, ok := m.events[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	e.BannerURL = &bannerURL
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.events, id)
	return nil
}

// ── Mock EventRegistrationRepository ──

type mockEventRegistrationRepo struct {
	registrations map[int64]*models.EventRegistration
	nextID        int64
}

func newMockEventRegistrationRepo() *mockEventRegistrationRepo {
	return &mockEventRegistrationRepo{registrations: make(map[int64]*models.EventRegistration), nextID: 1}
}

func (m *mockEventRegistrationRepo) Create(_ context.Context, eventID, userID int64) (int64, error) {
	for _, r := range m.registrations {
		if r.EventID == eventID && r.UserID == userID {
			return 0, apperrors.ErrAlreadyRegistered
		}
	}
	reg := &models.EventRegistration{
		ID:           m.nextID,
		EventID:      eventID,
		UserID:       userID,
		Status:       models.RegistrationRegistered,
		RegisteredAt: time.Now(),
	}
	m.nextID++
	m.registrations[reg.ID] = reg
	return reg.ID, nil
}

func (m *mockEventRegistrationRepo) GetByEventAndUser(_ context.Context, eventID, userID int64) (*models.EventRegistration, error) {
	for _, r := range m.registrations {
		if r.EventID == eventID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, apperrors.ErrNotRegistered
}

func (m *mockEventRegistrationRepo) GetByEventID(_ context.Context, eventID int64) ([]*models.EventRegistration, error) {
	var result []*models.EventRegistration
	for _, r := range m.registrations {
		if r.EventID == eventID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockEventRegistrationRepo) UpdateStatus(_ context.Context, eventID, userID int64, status models.RegistrationStatus) error {
	for _, r := range m.registrations {
		if r.EventID == eventID && r.UserID == userID {
			r.Status = status
			return nil
		}
	}
	return apperrors.ErrNotRegistered
}

func (m *mockEventRegistrationRepo) Delete(_ context.Context, eventID, userID int64) error {
	for id, r := range m.registrations {
		if r.EventID == eventID && r.UserID == userID {
			delete(m.registrations, id)
			return nil
		}
	}
	return apperrors.ErrNotRegistered
}

func (m *mockEventRegistrationRepo) CountByEventID(_ context.Context, eventID int64) (int, error) {
	count := 0
	for _, r := range m.registrations {
		if r.EventID == eventID {
			count++
		}
	}
	return count, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams   map[int64]*models.Team
	members *mockTeamMemberRepo
	nextID  int64
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[int64]*models.Team), nextID: 1}
}

func (m *mockTeamRepo) CreateWithLeader(_ context.Context, team *models.Team) (int64, error) {
	team.ID = m.nextID
	m.nextID++
	m.teams[team.ID] = team
	if m.members != nil {
		m.members.addMember(team.ID, team.CreatedBy, models.TeamRoleLeader)
	}
	return team.ID, nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id int64) (*models.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockTeamRepo) GetByEventID(_ context.Context, eventID int64, page, pageSize int) ([]*models.Team, int64, error) {
	var result []*models.Team
	for _, t := range m.teams {
		if t.EventID == eventID {
			result = append(result, t)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := m.teams[team.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.teams[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.teams, id)
	if m.members != nil {
		for memberID, member := range m.members.members {
			if member.TeamID == id {
				delete(m.members.members, memberID)
			}
		}
	}
	return nil
}

// ── Mock TeamMemberRepository ──

type mockTeamMemberRepo struct {
	members map[int64]*models.TeamMember
	teams   *mockTeamRepo
	nextID  int64
}

func newMockTeamMemberRepo(teams *mockTeamRepo) *mockTeamMemberRepo {
	m := &mockTeamMemberRepo{members: make(map[int64]*models.TeamMember), teams: teams, nextID: 1}
	teams.members = m
	return m
}

func (m *mockTeamMemberRepo) addMember(teamID, userID int64, role models.TeamMemberRole) *models.TeamMember {
	member := &models.TeamMember{ID: m.nextID, TeamID: teamID, UserID: userID, Role: role, JoinedAt: time.Now()}
	m.nextID++
	m.members[member.ID] = member
	return member
}

func (m *mockTeamMemberRepo) AddMemberGuarded(_ context.Context, teamID, userID int64) error {
	team, ok := m.teams.teams[teamID]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	count := 0
	for _, member := range m.members {
		if member.TeamID == teamID {
			if member.UserID == userID {
				return nil
			}
			count++
		}
	}
	if count >= team.MaxMembers {
		return apperrors.ErrTeamFull
	}
	m.addMember(teamID, userID, models.TeamRoleMember)
	return nil
}

func (m *mockTeamMemberRepo) GetRole(_ context.Context, teamID, userID int64) (models.TeamMemberRole, bool, error) {
	for _, member := range m.members {
		if member.TeamID == teamID && member.UserID == userID {
			return member.Role, true, nil
		}
	}
	return "", false, nil
}

func (m *mockTeamMemberRepo) GetMembersByTeamID(_ context.Context, teamID int64) ([]*models.TeamMember, error) {
	var result []*models.TeamMember
	for _, member := range m.members {
		if member.TeamID == teamID {
			result = append(result, member)
		}
	}
	return result, nil
}

func (m *mockTeamMemberRepo) GetMemberCountsByTeamIDs(_ context.Context, teamIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	for _, id := range teamIDs {
		for _, member := range m.members {
			if member.TeamID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (m *mockTeamMemberRepo) CountMembers(_ context.Context, teamID int64) (int, error) {
	count := 0
	for _, member := range m.members {
		if member.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (m *mockTeamMemberRepo) CountLeaders(_ context.Context, teamID int64) (int, error) {
	count := 0
	for _, member := range m.members {
		if member.TeamID == teamID && member.Role == models.TeamRoleLeader {
			count++
		}
	}
	return count, nil
}

func (m *mockTeamMemberRepo) UpdateRole(_ context.Context, teamID, userID int64, role models.TeamMemberRole) error {
	for _, member := range m.members {
		if member.TeamID == teamID && member.UserID == userID {
			member.Role = role
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (m *mockTeamMemberRepo) Remove(_ context.Context, teamID, userID int64) error {
	for id, member := range m.members {
		if member.TeamID == teamID && member.UserID == userID {
			delete(m.members, id)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (m *mockTeamMemberRepo) GetUserTeamIDForEvent(_ context.Context, eventID, userID int64) (int64, bool, error) {
	for _, member := range m.members {
		if member.UserID != userID {
			continue
		}
		if team, ok := m.teams.teams[member.TeamID]; ok && team.EventID == eventID {
			return team.ID, true, nil
		}
	}
	return 0, false, nil
}

// ── Mock TeamJoinRequestRepository ──

type mockTeamJoinRequestRepo struct {
	requests map[int64]*models.TeamJoinRequest
	nextID   int64
}

func newMockTeamJoinRequestRepo() *mockTeamJoinRequestRepo {
	return &mockTeamJoinRequestRepo{requests: make(map[int64]*models.TeamJoinRequest), nextID: 1}
}

func (m *mockTeamJoinRequestRepo) Create(_ context.Context, request *models.TeamJoinRequest) (int64, error) {
	for _, r := range m.requests {
		if r.TeamID == request.TeamID && r.UserID == request.UserID && r.Status == models.RequestPending {
			return 0, apperrors.ErrRequestPending
		}
	}
	request.ID = m.nextID
	m.nextID++
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	m.requests[request.ID] = request
	return request.ID, nil
}

func (m *mockTeamJoinRequestRepo) GetByID(_ context.Context, id int64) (*models.TeamJoinRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockTeamJoinRequestRepo) HasPending(_ context.Context, teamID, userID int64) (bool, error) {
	for _, r := range m.requests {
		if r.TeamID == teamID && r.UserID == userID && r.Status == models.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTeamJoinRequestRepo) GetPendingByTeamID(_ context.Context, teamID int64) ([]*models.TeamJoinRequest, error) {
	var result []*models.TeamJoinRequest
	for _, r := range m.requests {
		if r.TeamID == teamID && r.Status == models.RequestPending {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockTeamJoinRequestRepo) GetLatestStatusForUser(_ context.Context, teamID, userID int64) (*models.RequestStatus, error) {
	var latest *models.TeamJoinRequest
	for _, r := range m.requests {
		if r.TeamID == teamID && r.UserID == userID {
			if latest == nil || r.ID > latest.ID {
				latest = r
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	status := latest.Status
	return &status, nil
}

func (m *mockTeamJoinRequestRepo) UpdateStatus(_ context.Context, id int64, status models.RequestStatus) error {
	r, ok := m.requests[id]
	if !ok || r.Status != models.RequestPending {
		return apperrors.ErrResourceNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

// ── Mock JobRepository ──

type mockJobRepo struct {
	jobs   map[int64]*models.Job
	nextID int64
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[int64]*models.Job), nextID: 1}
}

func (m *mockJobRepo) Create(_ context.Context, job *models.Job) (int64, error) {
	job.ID = m.nextID
	m.nextID++
	m.jobs[job.ID] = job
	return job.ID, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	if j, ok := m.jobs[id]; ok {
		return j, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockJobRepo) GetAll(_ context.Context, _ *dto.JobFilterRequest) ([]*models.Job, int64, error) {
	var all []*models.Job
	for _, j := range m.jobs {
		all = append(all, j)
	}
	return all, int64(len(all)), nil
}

func (m *mockJobRepo) Update(_ context.Context, job *models.Job) error {
	if _, ok := m.jobs[job.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.jobs[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.jobs, id)
	return nil
}

// ── Mock JobApplicationRepository ──

type mockJobApplicationRepo struct {
	applications map[int64]*models.JobApplication
	nextID       int64
}

func newMockJobApplicationRepo() *mockJobApplicationRepo {
	return &mockJobApplicationRepo{applications: make(map[int64]*models.JobApplication), nextID: 1}
}

func (m *mockJobApplicationRepo) Create(_ context.Context, application *models.JobApplication) (int64, error) {
	for _, a := range m.applications {
		if a.JobID == application.JobID && a.UserID == application.UserID {
			return 0, apperrors.ErrAlreadyApplied
		}
	}
	application.ID = m.nextID
	m.nextID++
	application.Status = models.ApplicationApplied
	application.AppliedAt = time.Now()
	application.UpdatedAt = application.AppliedAt
	m.applications[application.ID] = application
	return application.ID, nil
}

func (m *mockJobApplicationRepo) GetByID(_ context.Context, id int64) (*models.JobApplication, error) {
	if a, ok := m.applications[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockJobApplicationRepo) GetByJobAndUser(_ context.Context, jobID, userID int64) (*models.JobApplication, error) {
	for _, a := range m.applications {
		if a.JobID == jobID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockJobApplicationRepo) GetByJobID(_ context.Context, jobID int64) ([]*models.JobApplication, error) {
	var result []*models.JobApplication
	for _, a := range m.applications {
		if a.JobID == jobID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockJobApplicationRepo) GetByUserID(_ context.Context, userID int64) ([]*models.JobApplication, error) {
	var result []*models.JobApplication
	for _, a := range m.applications {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockJobApplicationRepo) UpdateStatus(_ context.Context, id int64, status models.ApplicationStatus) error {
	a, ok := m.applications[id]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockJobApplicationRepo) Delete(_ context.Context, jobID, userID int64) error {
	for id, a := range m.applications {
		if a.JobID == jobID && a.UserID == userID {
			delete(m.applications, id)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}
