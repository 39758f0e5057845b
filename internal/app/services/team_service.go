package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// TeamService defines the interface for team formation operations
type TeamService interface {
	CreateTeam(ctx context.Context, actorID, eventID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetTeamsByEvent(ctx context.Context, eventID int64, page, pageSize int) (*dto.TeamListResponse, error)
	GetTeamByID(ctx context.Context, teamID, actorID int64) (*dto.TeamDetailResponse, error)
	UpdateTeam(ctx context.Context, actorID, teamID int64, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	DeleteTeam(ctx context.Context, actor *models.User, teamID int64) error
	RequestToJoin(ctx context.Context, actorID, teamID int64) (*dto.TeamJoinRequestResponse, error)
	GetPendingRequests(ctx context.Context, actorID, teamID int64) ([]dto.TeamJoinRequestResponse, error)
	ResolveRequest(ctx context.Context, actorID, teamID, requestID int64, accept bool) error
	ChangeRole(ctx context.Context, actorID, teamID, userID int64, role models.TeamMemberRole) error
	RemoveMember(ctx context.Context, actorID, teamID, userID int64) error
	LeaveTeam(ctx context.Context, actorID, teamID int64) error
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	teamRepo        repositories.TeamRepository
	teamMemberRepo  repositories.TeamMemberRepository
	teamRequestRepo repositories.TeamJoinRequestRepository
	eventRepo       repositories.EventRepository
	userRepo        repositories.UserRepository
	logger          zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(
	teamRepo repositories.TeamRepository,
	teamMemberRepo repositories.TeamMemberRepository,
	teamRequestRepo repositories.TeamJoinRequestRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	logger zerolog.Logger,
) TeamService {
	return &teamServiceImpl{
		teamRepo:        teamRepo,
		teamMemberRepo:  teamMemberRepo,
		teamRequestRepo: teamRequestRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// requireLeader checks that the actor leads the team
func (s *teamServiceImpl) requireLeader(ctx context.Context, teamID, actorID int64) error {
	role, isMember, err := s.teamMemberRepo.GetRole(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	if !isMember || role != models.TeamRoleLeader {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CreateTeam creates a team under a team based event. The creator becomes
// its leader and may belong to at most one team per event. A requested size
// above the event's per team limit is clamped to that limit.
func (s *teamServiceImpl) CreateTeam(ctx context.Context, actorID, eventID int64, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsTeamBased {
		return nil, apperrors.ErrNotTeamBased
	}
	if !event.StartDatetime.After(time.Now()) {
		return nil, apperrors.ErrEventStarted
	}

	if _, inTeam, err := s.teamMemberRepo.GetUserTeamIDForEvent(ctx, eventID, actorID); err != nil {
		return nil, err
	} else if inTeam {
		return nil, apperrors.ErrAlreadyInTeam
	}

	maxMembers := req.MaxMembers
	if event.MaxTeamSize != nil && maxMembers > *event.MaxTeamSize {
		maxMembers = *event.MaxTeamSize
	}

	team := &models.Team{
		EventID:      eventID,
		Name:         req.Name,
		Description:  req.Description,
		SkillsNeeded: req.SkillsNeeded,
		IsOpen:       req.IsOpen,
		MaxMembers:   maxMembers,
		CreatedBy:    actorID,
	}

	teamID, err := s.teamRepo.CreateWithLeader(ctx, team)
	if err != nil {
		return nil, err
	}
	team.ID = teamID

	s.logger.Info().Int64("teamID", teamID).Int64("eventID", eventID).Int64("createdBy", actorID).Msg("Team created")

	resp := toTeamResponse(team, 1)
	return &resp, nil
}

// GetTeamsByEvent retrieves an event's teams with pagination
func (s *teamServiceImpl) GetTeamsByEvent(ctx context.Context, eventID int64, page, pageSize int) (*dto.TeamListResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	teams, total, err := s.teamRepo.GetByEventID(ctx, eventID, page, pageSize)
	if err != nil {
		return nil, err
	}

	teamIDs := make([]int64, 0, len(teams))
	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
	}
	counts, err := s.teamMemberRepo.GetMemberCountsByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, toTeamResponse(team, counts[team.ID]))
	}

	return &dto.TeamListResponse{
		Teams:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// GetTeamByID retrieves a team with members and the caller's relationship to it
func (s *teamServiceImpl) GetTeamByID(ctx context.Context, teamID, actorID int64) (*dto.TeamDetailResponse, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.teamMemberRepo.GetMembersByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	memberResponses := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		memberResponses = append(memberResponses, dto.TeamMemberResponse{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
			User:     toUserBasicResponse(users[m.UserID]),
		})
	}

	detail := &dto.TeamDetailResponse{
		TeamResponse: toTeamResponse(team, len(members)),
		Members:      memberResponses,
	}

	role, isMember, err := s.teamMemberRepo.GetRole(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if isMember {
		detail.MembershipRole = string(role)
	} else {
		status, err := s.teamRequestRepo.GetLatestStatusForUser(ctx, teamID, actorID)
		if err != nil {
			return nil, err
		}
		if status != nil {
			detail.JoinRequestStatus = string(*status)
		}
	}

	return detail, nil
}

// UpdateTeam applies partial changes to a team, leaders only
func (s *teamServiceImpl) UpdateTeam(ctx context.Context, actorID, teamID int64, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.requireLeader(ctx, teamID, actorID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.SkillsNeeded != nil {
		team.SkillsNeeded = req.SkillsNeeded
	}
	if req.IsOpen != nil {
		team.IsOpen = *req.IsOpen
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	count, err := s.teamMemberRepo.CountMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := toTeamResponse(team, count)
	return &resp, nil
}

// DeleteTeam removes a team with its memberships and requests. Team leaders
// and platform admins may delete.
func (s *teamServiceImpl) DeleteTeam(ctx context.Context, actor *models.User, teamID int64) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return err
	}

	if actor.RoleType != models.RoleAdmin {
		if err := s.requireLeader(ctx, teamID, actor.ID); err != nil {
			return err
		}
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return err
	}

	s.logger.Info().Int64("teamID", teamID).Int64("deletedBy", actor.ID).Msg("Team deleted")
	return nil
}

// RequestToJoin files a pending join request for the team
func (s *teamServiceImpl) RequestToJoin(ctx context.Context, actorID, teamID int64) (*dto.TeamJoinRequestResponse, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsOpen {
		return nil, apperrors.NewConflictError("team is not accepting new members")
	}

	if _, inTeam, err := s.teamMemberRepo.GetUserTeamIDForEvent(ctx, team.EventID, actorID); err != nil {
		return nil, err
	} else if inTeam {
		return nil, apperrors.ErrAlreadyInTeam
	}

	count, err := s.teamMemberRepo.CountMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if count >= team.MaxMembers {
		return nil, apperrors.ErrTeamFull
	}

	pending, err := s.teamRequestRepo.HasPending(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.ErrRequestPending
	}

	request := &models.TeamJoinRequest{TeamID: teamID, UserID: actorID}
	requestID, err := s.teamRequestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	created, err := s.teamRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return &dto.TeamJoinRequestResponse{
		ID:        created.ID,
		TeamID:    created.TeamID,
		UserID:    created.UserID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// GetPendingRequests lists pending join requests, visible to the leader only
func (s *teamServiceImpl) GetPendingRequests(ctx context.Context, actorID, teamID int64) ([]dto.TeamJoinRequestResponse, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.requireLeader(ctx, teamID, actorID); err != nil {
		return nil, err
	}

	requests, err := s.teamRequestRepo.GetPendingByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(requests))
	for _, r := range requests {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamJoinRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, dto.TeamJoinRequestResponse{
			ID:        r.ID,
			TeamID:    r.TeamID,
			UserID:    r.UserID,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
			User:      toUserBasicResponse(users[r.UserID]),
		})
	}
	return responses, nil
}

// ResolveRequest accepts or rejects a pending join request. On accept the
// member is inserted under a capacity guard first. A full team surfaces
// ErrTeamFull and leaves the request pending, so it can be retried once a
// seat frees up.
func (s *teamServiceImpl) ResolveRequest(ctx context.Context, actorID, teamID, requestID int64, accept bool) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := s.requireLeader(ctx, teamID, actorID); err != nil {
		return err
	}

	request, err := s.teamRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.TeamID != teamID {
		return apperrors.ErrResourceNotFound
	}
	if request.Status != models.RequestPending {
		return apperrors.NewConflictError("join request is already resolved")
	}

	if !accept {
		return s.teamRequestRepo.UpdateStatus(ctx, requestID, models.RequestRejected)
	}

	// The requester may have joined another team of the same event since the
	// request was filed. The request stays PENDING so the leader can still
	// reject it.
	existingTeamID, inTeam, err := s.teamMemberRepo.GetUserTeamIDForEvent(ctx, team.EventID, request.UserID)
	if err != nil {
		return err
	}
	if inTeam && existingTeamID != teamID {
		return apperrors.ErrAlreadyInTeam
	}

	if err := s.teamMemberRepo.AddMemberGuarded(ctx, teamID, request.UserID); err != nil {
		return err
	}
	if err := s.teamRequestRepo.UpdateStatus(ctx, requestID, models.RequestAccepted); err != nil {
		return err
	}

	s.logger.Info().
		Int64("teamID", teamID).
		Int64("userID", request.UserID).
		Int64("resolvedBy", actorID).
		Msg("Team join request accepted")
	return nil
}

// ChangeRole promotes or demotes a team member, leaders only. A demotion
// that would leave the team without any leader is refused.
func (s *teamServiceImpl) ChangeRole(ctx context.Context, actorID, teamID, userID int64, role models.TeamMemberRole) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return err
	}
	if err := s.requireLeader(ctx, teamID, actorID); err != nil {
		return err
	}

	current, isMember, err := s.teamMemberRepo.GetRole(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.ErrResourceNotFound
	}
	if current == role {
		return nil
	}

	if current == models.TeamRoleLeader && role == models.TeamRoleMember {
		leaders, err := s.teamMemberRepo.CountLeaders(ctx, teamID)
		if err != nil {
			return err
		}
		if leaders <= 1 {
			return apperrors.ErrLastLeader
		}
	}

	return s.teamMemberRepo.UpdateRole(ctx, teamID, userID, role)
}

// RemoveMember kicks a member from the team, leaders only. Leaders leave
// through LeaveTeam instead of removing themselves here.
func (s *teamServiceImpl) RemoveMember(ctx context.Context, actorID, teamID, userID int64) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return err
	}
	if err := s.requireLeader(ctx, teamID, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return apperrors.NewBadRequestError("use leave to remove yourself from the team")
	}

	role, isMember, err := s.teamMemberRepo.GetRole(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.ErrResourceNotFound
	}
	if role == models.TeamRoleLeader {
		leaders, err := s.teamMemberRepo.CountLeaders(ctx, teamID)
		if err != nil {
			return err
		}
		if leaders <= 1 {
			return apperrors.ErrLastLeader
		}
	}

	return s.teamMemberRepo.Remove(ctx, teamID, userID)
}

// LeaveTeam removes the caller from the team. The sole leader of a team
// with other members must promote a replacement before leaving.
func (s *teamServiceImpl) LeaveTeam(ctx context.Context, actorID, teamID int64) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return err
	}

	role, isMember, err := s.teamMemberRepo.GetRole(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.ErrResourceNotFound
	}

	if role == models.TeamRoleLeader {
		leaders, err := s.teamMemberRepo.CountLeaders(ctx, teamID)
		if err != nil {
			return err
		}
		if leaders <= 1 {
			members, err := s.teamMemberRepo.CountMembers(ctx, teamID)
			if err != nil {
				return err
			}
			if members > 1 {
				return apperrors.ErrLastLeader
			}
			// Last member leaving dissolves the team
			return s.teamRepo.Delete(ctx, teamID)
		}
	}

	return s.teamMemberRepo.Remove(ctx, teamID, actorID)
}
