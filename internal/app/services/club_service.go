package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// ClubService defines the interface for club and club membership operations
type ClubService interface {
	CreateClub(ctx context.Context, actor *models.User, req *dto.CreateClubRequest, logo *multipart.FileHeader) (*dto.ClubResponse, error)
	GetAllClubs(ctx context.Context, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error)
	GetClubByID(ctx context.Context, clubID int64, actorID int64) (*dto.ClubDetailResponse, error)
	UpdateClub(ctx context.Context, actor *models.User, clubID int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error)
	UpdateClubLogo(ctx context.Context, actor *models.User, clubID int64, fileHeader *multipart.FileHeader) (*dto.ClubResponse, error)
	DeleteClub(ctx context.Context, actor *models.User, clubID int64) error
	RequestToJoin(ctx context.Context, actorID, clubID int64) (*dto.ClubJoinRequestResponse, error)
	GetPendingRequests(ctx context.Context, actor *models.User, clubID int64) ([]dto.ClubJoinRequestResponse, error)
	ResolveRequest(ctx context.Context, actor *models.User, clubID, requestID int64, accept bool) error
	GetMembers(ctx context.Context, clubID int64) ([]dto.ClubMemberResponse, error)
}

// clubServiceImpl implements ClubService
type clubServiceImpl struct {
	clubRepo        repositories.ClubRepository
	clubMemberRepo  repositories.ClubMemberRepository
	clubRequestRepo repositories.ClubJoinRequestRepository
	userRepo        repositories.UserRepository
	fileStorage     *filestorage.LocalStorage
	logger          zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(
	clubRepo repositories.ClubRepository,
	clubMemberRepo repositories.ClubMemberRepository,
	clubRequestRepo repositories.ClubJoinRequestRepository,
	userRepo repositories.UserRepository,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) ClubService {
	return &clubServiceImpl{
		clubRepo:        clubRepo,
		clubMemberRepo:  clubMemberRepo,
		clubRequestRepo: clubRequestRepo,
		userRepo:        userRepo,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

// canManageClub reports whether the actor may administer the club.
// Platform admins and club admins qualify.
func (s *clubServiceImpl) canManageClub(ctx context.Context, actor *models.User, clubID int64) (bool, error) {
	if actor.RoleType == models.RoleAdmin {
		return true, nil
	}
	role, isMember, err := s.clubMemberRepo.GetRole(ctx, clubID, actor.ID)
	if err != nil {
		return false, err
	}
	return isMember && role == models.ClubRoleAdmin, nil
}

// CreateClub creates a club and makes its creator a club admin
func (s *clubServiceImpl) CreateClub(ctx context.Context, actor *models.User, req *dto.CreateClubRequest, logo *multipart.FileHeader) (*dto.ClubResponse, error) {
	if actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	club := &models.Club{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actor.ID,
	}

	if logo != nil {
		logoURL, err := s.fileStorage.SaveFileWithPath(logo, "club_logos")
		if err != nil {
			return nil, err
		}
		club.LogoURL = &logoURL
	}

	clubID, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		return nil, err
	}
	club.ID = clubID

	if _, err := s.clubMemberRepo.Add(ctx, clubID, actor.ID, models.ClubRoleAdmin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("clubID", clubID).Int64("createdBy", actor.ID).Msg("Club created")

	resp := toClubResponse(club, 1, actor)
	return &resp, nil
}

// GetAllClubs retrieves clubs with filtering and pagination
func (s *clubServiceImpl) GetAllClubs(ctx context.Context, filter *dto.ClubFilterRequest) (*dto.ClubListResponse, error) {
	clubs, total, err := s.clubRepo.GetAll(ctx, filter.Search, filter.Page, filter.PageSize)
	if err != nil {
		return nil, err
	}

	clubIDs := make([]int64, 0, len(clubs))
	for _, club := range clubs {
		clubIDs = append(clubIDs, club.ID)
	}
	counts, err := s.clubMemberRepo.GetMemberCountsByClubIDs(ctx, clubIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		responses = append(responses, toClubResponse(club, counts[club.ID], nil))
	}

	return &dto.ClubListResponse{
		Clubs:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetClubByID retrieves a club with members and the caller's relationship to it
func (s *clubServiceImpl) GetClubByID(ctx context.Context, clubID int64, actorID int64) (*dto.ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	members, err := s.clubMemberRepo.GetMembersByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(members)+1)
	userIDs = append(userIDs, club.CreatedBy)
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	memberResponses := make([]dto.ClubMemberResponse, 0, len(members))
	for _, m := range members {
		memberResponses = append(memberResponses, dto.ClubMemberResponse{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
			User:     toUserBasicResponse(users[m.UserID]),
		})
	}

	detail := &dto.ClubDetailResponse{
		ClubResponse: toClubResponse(club, len(members), users[club.CreatedBy]),
		Members:      memberResponses,
	}

	role, isMember, err := s.clubMemberRepo.GetRole(ctx, clubID, actorID)
	if err != nil {
		return nil, err
	}
	if isMember {
		detail.MembershipRole = string(role)
	} else {
		status, err := s.clubRequestRepo.GetLatestStatusForUser(ctx, clubID, actorID)
		if err != nil {
			return nil, err
		}
		if status != nil {
			detail.JoinRequestStatus = string(*status)
		}
	}

	return detail, nil
}

// UpdateClub applies partial changes to a club
func (s *clubServiceImpl) UpdateClub(ctx context.Context, actor *models.User, clubID int64, req *dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	allowed, err := s.canManageClub(ctx, actor, clubID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.clubRepo.Update(ctx, clubID, req.Name, req.Description); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	count, err := s.clubMemberRepo.GetMemberCountByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	resp := toClubResponse(club, count, nil)
	return &resp, nil
}

// UpdateClubLogo stores the uploaded logo and links it to the club
func (s *clubServiceImpl) UpdateClubLogo(ctx context.Context, actor *models.User, clubID int64, fileHeader *multipart.FileHeader) (*dto.ClubResponse, error) {
	allowed, err := s.canManageClub(ctx, actor, clubID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrPermissionDenied
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	logoURL, err := s.fileStorage.SaveFileWithPath(fileHeader, "club_logos")
	if err != nil {
		return nil, err
	}

	if err := s.clubRepo.UpdateLogo(ctx, clubID, &logoURL); err != nil {
		return nil, err
	}

	if club.LogoURL != nil {
		if err := s.fileStorage.DeleteFile(*club.LogoURL); err != nil {
			s.logger.Warn().Err(err).Int64("clubID", clubID).Msg("Failed to delete old club logo")
		}
	}

	club.LogoURL = &logoURL
	count, err := s.clubMemberRepo.GetMemberCountByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	resp := toClubResponse(club, count, nil)
	return &resp, nil
}

// DeleteClub removes a club together with its memberships and join requests
func (s *clubServiceImpl) DeleteClub(ctx context.Context, actor *models.User, clubID int64) error {
	allowed, err := s.canManageClub(ctx, actor, clubID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrPermissionDenied
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}

	if err := s.clubRepo.Delete(ctx, clubID); err != nil {
		return err
	}

	if club.LogoURL != nil {
		if err := s.fileStorage.DeleteFile(*club.LogoURL); err != nil {
			s.logger.Warn().Err(err).Int64("clubID", clubID).Msg("Failed to delete club logo file")
		}
	}

	s.logger.Info().Int64("clubID", clubID).Int64("deletedBy", actor.ID).Msg("Club deleted")
	return nil
}

// RequestToJoin files a pending join request for the club
func (s *clubServiceImpl) RequestToJoin(ctx context.Context, actorID, clubID int64) (*dto.ClubJoinRequestResponse, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	_, isMember, err := s.clubMemberRepo.GetRole(ctx, clubID, actorID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, apperrors.ErrAlreadyMember
	}

	pending, err := s.clubRequestRepo.HasPending(ctx, clubID, actorID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.ErrRequestPending
	}

	request := &models.ClubJoinRequest{ClubID: clubID, UserID: actorID}
	requestID, err := s.clubRequestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	created, err := s.clubRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return &dto.ClubJoinRequestResponse{
		ID:        created.ID,
		ClubID:    created.ClubID,
		UserID:    created.UserID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// GetPendingRequests lists pending join requests, visible to club managers only
func (s *clubServiceImpl) GetPendingRequests(ctx context.Context, actor *models.User, clubID int64) ([]dto.ClubJoinRequestResponse, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	allowed, err := s.canManageClub(ctx, actor, clubID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrPermissionDenied
	}

	requests, err := s.clubRequestRepo.GetPendingByClubID(ctx, clubID)
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

	responses := make([]dto.ClubJoinRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, dto.ClubJoinRequestResponse{
			ID:        r.ID,
			ClubID:    r.ClubID,
			UserID:    r.UserID,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
			User:      toUserBasicResponse(users[r.UserID]),
		})
	}
	return responses, nil
}

// ResolveRequest accepts or rejects a pending join request. On accept the
// membership row is written before the request status flips, so a failure
// between the two steps leaves a retryable pending request rather than an
// accepted request without a membership.
func (s *clubServiceImpl) ResolveRequest(ctx context.Context, actor *models.User, clubID, requestID int64, accept bool) error {
	allowed, err := s.canManageClub(ctx, actor, clubID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrPermissionDenied
	}

	request, err := s.clubRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ClubID != clubID {
		return apperrors.ErrResourceNotFound
	}
	if request.Status != models.RequestPending {
		return apperrors.NewConflictError("join request is already resolved")
	}

	if !accept {
		return s.clubRequestRepo.UpdateStatus(ctx, requestID, models.RequestRejected)
	}

	if _, err := s.clubMemberRepo.Add(ctx, clubID, request.UserID, models.ClubRoleMember); err != nil {
		return err
	}
	if err := s.clubRequestRepo.UpdateStatus(ctx, requestID, models.RequestAccepted); err != nil {
		return err
	}

	s.logger.Info().
		Int64("clubID", clubID).
		Int64("userID", request.UserID).
		Int64("resolvedBy", actor.ID).
		Msg("Club join request accepted")
	return nil
}

// GetMembers lists the members of a club
func (s *clubServiceImpl) GetMembers(ctx context.Context, clubID int64) ([]dto.ClubMemberResponse, error) {
	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	members, err := s.clubMemberRepo.GetMembersByClubID(ctx, clubID)
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

	responses := make([]dto.ClubMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.ClubMemberResponse{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
			User:     toUserBasicResponse(users[m.UserID]),
		})
	}
	return responses, nil
}
