package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

type teamServiceFixture struct {
	svc         TeamService
	teamRepo    *mockTeamRepo
	memberRepo  *mockTeamMemberRepo
	requestRepo *mockTeamJoinRequestRepo
	eventRepo   *mockEventRepo
	userRepo    *mockUserRepo
}

func setupTeamService() *teamServiceFixture {
	teamRepo := newMockTeamRepo()
	memberRepo := newMockTeamMemberRepo(teamRepo)
	requestRepo := newMockTeamJoinRequestRepo()
	eventRepo := newMockEventRepo()
	userRepo := newMockUserRepo()
	svc := NewTeamService(teamRepo, memberRepo, requestRepo, eventRepo, userRepo, zerolog.Nop())
	return &teamServiceFixture{
		svc:         svc,
		teamRepo:    teamRepo,
		memberRepo:  memberRepo,
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

func (f *teamServiceFixture) teamEvent(maxTeamSize *int) *models.Event {
	event := &models.Event{
		Title:         "Hackathon",
		EventMode:     models.EventModeOffline,
		StartDatetime: time.Now().Add(24 * time.Hour),
		EndDatetime:   time.Now().Add(48 * time.Hour),
		IsTeamBased:   true,
		MaxTeamSize:   maxTeamSize,
		CreatedBy:     99,
	}
	f.eventRepo.Create(context.Background(), event)
	return event
}

func (f *teamServiceFixture) createTeam(t *testing.T, leaderID, eventID int64, maxMembers int) *dto.TeamResponse {
	t.Helper()
	team, err := f.svc.CreateTeam(context.Background(), leaderID, eventID, &dto.CreateTeamRequest{
		Name:       "Null Pointers",
		IsOpen:     true,
		MaxMembers: maxMembers,
	})
	if err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}
	return team
}

func TestCreateTeam_LeaderAssigned(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)

	team := f.createTeam(t, 1, event.ID, 4)

	role, isMember, _ := f.memberRepo.GetRole(context.Background(), team.ID, 1)
	if !isMember {
		t.Fatal("creator should be a team member")
	}
	if role != models.TeamRoleLeader {
		t.Errorf("expected LEADER role for creator, got %s", role)
	}
}

func TestCreateTeam_NotTeamBased(t *testing.T) {
	f := setupTeamService()
	event := &models.Event{
		Title:         "Guest Lecture",
		StartDatetime: time.Now().Add(24 * time.Hour),
		EndDatetime:   time.Now().Add(26 * time.Hour),
		IsTeamBased:   false,
	}
	f.eventRepo.Create(context.Background(), event)

	_, err := f.svc.CreateTeam(context.Background(), 1, event.ID, &dto.CreateTeamRequest{Name: "X", MaxMembers: 4})
	if !errors.Is(err, apperrors.ErrNotTeamBased) {
		t.Errorf("expected ErrNotTeamBased, got: %v", err)
	}
}

func TestCreateTeam_AfterEventStart(t *testing.T) {
	f := setupTeamService()
	event := &models.Event{
		Title:         "Hackathon",
		StartDatetime: time.Now().Add(-1 * time.Hour),
		EndDatetime:   time.Now().Add(24 * time.Hour),
		IsTeamBased:   true,
	}
	f.eventRepo.Create(context.Background(), event)

	_, err := f.svc.CreateTeam(context.Background(), 1, event.ID, &dto.CreateTeamRequest{Name: "X", MaxMembers: 4})
	if !errors.Is(err, apperrors.ErrEventStarted) {
		t.Errorf("expected ErrEventStarted, got: %v", err)
	}
}

func TestCreateTeam_ClampsToEventLimit(t *testing.T) {
	f := setupTeamService()
	limit := 3
	event := f.teamEvent(&limit)

	team := f.createTeam(t, 1, event.ID, 10)
	if team.MaxMembers != 3 {
		t.Errorf("expected maxMembers clamped to 3, got %d", team.MaxMembers)
	}
}

func TestCreateTeam_OneTeamPerEvent(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	f.createTeam(t, 1, event.ID, 4)

	_, err := f.svc.CreateTeam(context.Background(), 1, event.ID, &dto.CreateTeamRequest{Name: "Second", MaxMembers: 4})
	if !errors.Is(err, apperrors.ErrAlreadyInTeam) {
		t.Errorf("expected ErrAlreadyInTeam, got: %v", err)
	}
}

func TestRequestToJoin_ClosedTeam(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.teamRepo.teams[team.ID].IsOpen = false

	_, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict for closed team, got: %v", err)
	}
}

func TestRequestToJoin_MemberOfAnotherTeam(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.createTeam(t, 2, event.ID, 4)

	_, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if !errors.Is(err, apperrors.ErrAlreadyInTeam) {
		t.Errorf("expected ErrAlreadyInTeam, got: %v", err)
	}
}

func TestRequestToJoin_TeamAtCapacity(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 1)

	_, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if !errors.Is(err, apperrors.ErrTeamFull) {
		t.Errorf("expected ErrTeamFull, got: %v", err)
	}
}

func TestResolveRequest_AcceptAddsTeamMember(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	req, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if err != nil {
		t.Fatalf("RequestToJoin failed: %v", err)
	}

	if err := f.svc.ResolveRequest(context.Background(), 1, team.ID, req.ID, true); err != nil {
		t.Fatalf("ResolveRequest(accept) failed: %v", err)
	}

	role, isMember, _ := f.memberRepo.GetRole(context.Background(), team.ID, 2)
	if !isMember {
		t.Fatal("accepted user should be a team member")
	}
	if role != models.TeamRoleMember {
		t.Errorf("expected MEMBER role, got %s", role)
	}
	stored, _ := f.requestRepo.GetByID(context.Background(), req.ID)
	if stored.Status != models.RequestAccepted {
		t.Errorf("expected ACCEPTED status, got %s", stored.Status)
	}
}

func TestResolveRequest_LeaderOnly(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	req, _ := f.svc.RequestToJoin(context.Background(), 2, team.ID)

	err := f.svc.ResolveRequest(context.Background(), 3, team.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestResolveRequest_FullTeamLeavesRequestPending(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 2)
	req, _ := f.svc.RequestToJoin(context.Background(), 2, team.ID)

	// Fill the last seat before the request is resolved
	if err := f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 3); err != nil {
		t.Fatalf("AddMemberGuarded failed: %v", err)
	}

	err := f.svc.ResolveRequest(context.Background(), 1, team.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrTeamFull) {
		t.Fatalf("expected ErrTeamFull, got: %v", err)
	}

	// The request stays PENDING so it can be retried after a seat frees up
	stored, _ := f.requestRepo.GetByID(context.Background(), req.ID)
	if stored.Status != models.RequestPending {
		t.Errorf("request should remain PENDING after a failed accept, got %s", stored.Status)
	}
}

func TestChangeRole_DemoteLastLeader(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 2)

	err := f.svc.ChangeRole(context.Background(), 1, team.ID, 1, models.TeamRoleMember)
	if !errors.Is(err, apperrors.ErrLastLeader) {
		t.Errorf("expected ErrLastLeader, got: %v", err)
	}
}

func TestChangeRole_PromoteThenDemote(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 2)

	if err := f.svc.ChangeRole(context.Background(), 1, team.ID, 2, models.TeamRoleLeader); err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	// With two leaders, demoting one is allowed
	if err := f.svc.ChangeRole(context.Background(), 1, team.ID, 1, models.TeamRoleMember); err != nil {
		t.Errorf("demote with a second leader should succeed, got: %v", err)
	}
}

func TestRemoveMember_SelfRemovalRejected(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)

	err := f.svc.RemoveMember(context.Background(), 1, team.ID, 1)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request for self removal, got: %v", err)
	}
}

func TestLeaveTeam_LastLeaderWithMembers(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 2)

	err := f.svc.LeaveTeam(context.Background(), 1, team.ID)
	if !errors.Is(err, apperrors.ErrLastLeader) {
		t.Errorf("expected ErrLastLeader, got: %v", err)
	}
}

func TestLeaveTeam_SoleMemberDissolvesTeam(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)

	if err := f.svc.LeaveTeam(context.Background(), 1, team.ID); err != nil {
		t.Fatalf("LeaveTeam failed: %v", err)
	}
	if _, err := f.teamRepo.GetByID(context.Background(), team.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("team should be dissolved when its only member leaves, got: %v", err)
	}
}

func TestLeaveTeam_PlainMember(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 2)

	if err := f.svc.LeaveTeam(context.Background(), 2, team.ID); err != nil {
		t.Fatalf("LeaveTeam failed: %v", err)
	}
	if _, isMember, _ := f.memberRepo.GetRole(context.Background(), team.ID, 2); isMember {
		t.Error("member should be removed after leaving")
	}
}

func TestDeleteTeam_PendingRequestResolutionFails(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)

	req, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if err != nil {
		t.Fatalf("RequestToJoin failed: %v", err)
	}

	leader := testUser(f.userRepo, 1, models.RoleStudent)
	if err := f.svc.DeleteTeam(context.Background(), leader, team.ID); err != nil {
		t.Fatalf("DeleteTeam failed: %v", err)
	}

	err = f.svc.ResolveRequest(context.Background(), 1, team.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound resolving a request for a deleted team, got: %v", err)
	}
}

func TestResolveRequest_RetryAfterPartialFailure(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	team := f.createTeam(t, 1, event.ID, 4)
	req, err := f.svc.RequestToJoin(context.Background(), 2, team.ID)
	if err != nil {
		t.Fatalf("RequestToJoin failed: %v", err)
	}

	// The membership insert landed but the status flip was lost
	if err := f.memberRepo.AddMemberGuarded(context.Background(), team.ID, 2); err != nil {
		t.Fatalf("AddMemberGuarded failed: %v", err)
	}

	if err := f.svc.ResolveRequest(context.Background(), 1, team.ID, req.ID, true); err != nil {
		t.Fatalf("retried accept should succeed, got: %v", err)
	}

	stored, _ := f.requestRepo.GetByID(context.Background(), req.ID)
	if stored.Status != models.RequestAccepted {
		t.Errorf("expected ACCEPTED status after retry, got %s", stored.Status)
	}
	count, _ := f.memberRepo.CountMembers(context.Background(), team.ID)
	if count != 2 {
		t.Errorf("expected 2 members after retry, got %d", count)
	}
}

func TestResolveRequest_MemberOfAnotherTeam(t *testing.T) {
	f := setupTeamService()
	event := f.teamEvent(nil)
	teamA := f.createTeam(t, 1, event.ID, 4)
	teamB := f.createTeam(t, 3, event.ID, 4)

	reqA, err := f.svc.RequestToJoin(context.Background(), 2, teamA.ID)
	if err != nil {
		t.Fatalf("RequestToJoin team A failed: %v", err)
	}
	reqB, err := f.svc.RequestToJoin(context.Background(), 2, teamB.ID)
	if err != nil {
		t.Fatalf("RequestToJoin team B failed: %v", err)
	}

	if err := f.svc.ResolveRequest(context.Background(), 1, teamA.ID, reqA.ID, true); err != nil {
		t.Fatalf("accept on team A failed: %v", err)
	}

	err = f.svc.ResolveRequest(context.Background(), 3, teamB.ID, reqB.ID, true)
	if !errors.Is(err, apperrors.ErrAlreadyInTeam) {
		t.Fatalf("expected ErrAlreadyInTeam accepting into a second team, got: %v", err)
	}
	if _, isMember, _ := f.memberRepo.GetRole(context.Background(), teamB.ID, 2); isMember {
		t.Error("user must not join a second team of the same event")
	}

	// The request stays PENDING so the leader can still reject it
	stored, _ := f.requestRepo.GetByID(context.Background(), reqB.ID)
	if stored.Status != models.RequestPending {
		t.Fatalf("expected PENDING status after refused accept, got %s", stored.Status)
	}
	if err := f.svc.ResolveRequest(context.Background(), 3, teamB.ID, reqB.ID, false); err != nil {
		t.Fatalf("reject after refused accept failed: %v", err)
	}
}
