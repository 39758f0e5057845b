package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func setupClubService() (ClubService, *mockClubRepo, *mockClubMemberRepo, *mockClubJoinRequestRepo, *mockUserRepo) {
	clubRepo := newMockClubRepo()
	memberRepo := newMockClubMemberRepo()
	requestRepo := newMockClubJoinRequestRepo()
	userRepo := newMockUserRepo()
	svc := NewClubService(clubRepo, memberRepo, requestRepo, userRepo, nil, zerolog.Nop())
	return svc, clubRepo, memberRepo, requestRepo, userRepo
}

func testUser(userRepo *mockUserRepo, id int64, role models.UserRole) *models.User {
	return userRepo.add(&models.User{
		ID:        id,
		Email:     fmt.Sprintf("user%d@campus.edu", id),
		FirstName: "Test",
		LastName:  "User",
		RoleType:  role,
		IsActive:  true,
	})
}

func createTestClub(t *testing.T, svc ClubService, admin *models.User) *dto.ClubResponse {
	t.Helper()
	club, err := svc.CreateClub(context.Background(), admin, &dto.CreateClubRequest{
		Name:        "Robotics Club",
		Description: "We build robots",
	}, nil)
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}
	return club
}

func TestCreateClub_AdminOnly(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	student := testUser(userRepo, 1, models.RoleStudent)

	_, err := svc.CreateClub(context.Background(), student, &dto.CreateClubRequest{Name: "X"}, nil)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestCreateClub_CreatorBecomesClubAdmin(t *testing.T) {
	svc, _, memberRepo, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)

	club := createTestClub(t, svc, admin)

	role, isMember, err := memberRepo.GetRole(context.Background(), club.ID, admin.ID)
	if err != nil || !isMember {
		t.Fatalf("creator should be a member, isMember=%v err=%v", isMember, err)
	}
	if role != models.ClubRoleAdmin {
		t.Errorf("expected creator role ADMIN, got %s", role)
	}
	if club.MemberCount != 1 {
		t.Errorf("expected memberCount 1, got %d", club.MemberCount)
	}
}

func TestRequestToJoin_CreatesPendingRequest(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)

	req, err := svc.RequestToJoin(context.Background(), student.ID, club.ID)
	if err != nil {
		t.Fatalf("RequestToJoin failed: %v", err)
	}
	if req.Status != string(models.RequestPending) {
		t.Errorf("expected PENDING status, got %s", req.Status)
	}
}

func TestRequestToJoin_AlreadyMember(t *testing.T) {
	svc, _, memberRepo, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	memberRepo.Add(context.Background(), club.ID, student.ID, models.ClubRoleMember)

	_, err := svc.RequestToJoin(context.Background(), student.ID, club.ID)
	if !errors.Is(err, apperrors.ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got: %v", err)
	}
}

func TestRequestToJoin_DuplicatePending(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)

	if _, err := svc.RequestToJoin(context.Background(), student.ID, club.ID); err != nil {
		t.Fatalf("first RequestToJoin failed: %v", err)
	}
	_, err := svc.RequestToJoin(context.Background(), student.ID, club.ID)
	if !errors.Is(err, apperrors.ErrRequestPending) {
		t.Errorf("expected ErrRequestPending, got: %v", err)
	}
}

func TestResolveRequest_AcceptAddsMember(t *testing.T) {
	svc, _, memberRepo, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	req, _ := svc.RequestToJoin(context.Background(), student.ID, club.ID)

	if err := svc.ResolveRequest(context.Background(), admin, club.ID, req.ID, true); err != nil {
		t.Fatalf("ResolveRequest(accept) failed: %v", err)
	}

	role, isMember, _ := memberRepo.GetRole(context.Background(), club.ID, student.ID)
	if !isMember {
		t.Fatal("accepted user should be a club member")
	}
	if role != models.ClubRoleMember {
		t.Errorf("expected MEMBER role, got %s", role)
	}
}

func TestResolveRequest_RejectedUserCanRequestAgain(t *testing.T) {
	svc, _, memberRepo, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	req, _ := svc.RequestToJoin(context.Background(), student.ID, club.ID)

	if err := svc.ResolveRequest(context.Background(), admin, club.ID, req.ID, false); err != nil {
		t.Fatalf("ResolveRequest(reject) failed: %v", err)
	}
	if _, isMember, _ := memberRepo.GetRole(context.Background(), club.ID, student.ID); isMember {
		t.Fatal("rejected user should not become a member")
	}

	// A rejection does not block a later attempt
	if _, err := svc.RequestToJoin(context.Background(), student.ID, club.ID); err != nil {
		t.Errorf("re-request after rejection should succeed, got: %v", err)
	}
}

func TestResolveRequest_AlreadyResolved(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	req, _ := svc.RequestToJoin(context.Background(), student.ID, club.ID)
	svc.ResolveRequest(context.Background(), admin, club.ID, req.ID, true)

	err := svc.ResolveRequest(context.Background(), admin, club.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict for already resolved request, got: %v", err)
	}
}

func TestResolveRequest_RequiresClubManager(t *testing.T) {
	svc, _, memberRepo, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	member := testUser(userRepo, 3, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	memberRepo.Add(context.Background(), club.ID, member.ID, models.ClubRoleMember)
	req, _ := svc.RequestToJoin(context.Background(), student.ID, club.ID)

	// A plain member cannot resolve requests
	err := svc.ResolveRequest(context.Background(), member, club.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestResolveRequest_WrongClub(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	other, err := svc.CreateClub(context.Background(), admin, &dto.CreateClubRequest{Name: "Chess Club"}, nil)
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}
	req, _ := svc.RequestToJoin(context.Background(), student.ID, club.ID)

	err = svc.ResolveRequest(context.Background(), admin, other.ID, req.ID, true)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound for mismatched club, got: %v", err)
	}
}

func TestGetClubByID_MembershipProjections(t *testing.T) {
	svc, _, _, _, userRepo := setupClubService()
	admin := testUser(userRepo, 1, models.RoleAdmin)
	student := testUser(userRepo, 2, models.RoleStudent)
	club := createTestClub(t, svc, admin)
	svc.RequestToJoin(context.Background(), student.ID, club.ID)

	detail, err := svc.GetClubByID(context.Background(), club.ID, student.ID)
	if err != nil {
		t.Fatalf("GetClubByID failed: %v", err)
	}
	if detail.MembershipRole != "" {
		t.Errorf("non-member should have no membership role, got %q", detail.MembershipRole)
	}
	if detail.JoinRequestStatus != string(models.RequestPending) {
		t.Errorf("expected PENDING join request status, got %q", detail.JoinRequestStatus)
	}

	adminDetail, err := svc.GetClubByID(context.Background(), club.ID, admin.ID)
	if err != nil {
		t.Fatalf("GetClubByID failed: %v", err)
	}
	if adminDetail.MembershipRole != string(models.ClubRoleAdmin) {
		t.Errorf("expected ADMIN membership role, got %q", adminDetail.MembershipRole)
	}
}
