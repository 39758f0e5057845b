package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// EventService defines the interface for event and registration operations
type EventService interface {
	CreateEvent(ctx context.Context, actor *models.User, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, eventID, actorID int64) (*dto.EventDetailResponse, error)
	UpdateEvent(ctx context.Context, actor *models.User, eventID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	UpdateEventBanner(ctx context.Context, actor *models.User, eventID int64, fileHeader *multipart.FileHeader) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, actor *models.User, eventID int64) error
	Register(ctx context.Context, actorID, eventID int64) (*dto.EventRegistrationResponse, error)
	CancelRegistration(ctx context.Context, actorID, eventID int64) error
	MarkAttended(ctx context.Context, actor *models.User, eventID, userID int64) error
	GetRegistrations(ctx context.Context, actor *models.User, eventID int64) ([]dto.EventRegistrationResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo        repositories.EventRepository
	registrationRepo repositories.EventRegistrationRepository
	userRepo         repositories.UserRepository
	fileStorage      *filestorage.LocalStorage
	logger           zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repositories.EventRepository,
	registrationRepo repositories.EventRegistrationRepository,
	userRepo repositories.UserRepository,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		fileStorage:      fileStorage,
		logger:           logger,
	}
}

// canManageEvent reports whether the actor may administer the event.
// The event creator and platform admins qualify.
func canManageEvent(actor *models.User, event *models.Event) bool {
	return actor.RoleType == models.RoleAdmin || event.CreatedBy == actor.ID
}

// CreateEvent creates an event. Students may not create events.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, actor *models.User, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if actor.RoleType != models.RoleFaculty && actor.RoleType != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, apperrors.NewBadRequestError("event end must be after its start")
	}
	if !req.IsTeamBased && req.MaxTeamSize != nil {
		return nil, apperrors.NewBadRequestError("maxTeamSize is only valid for team based events")
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		EventMode:     models.EventMode(req.EventMode),
		Location:      req.Location,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		IsTeamBased:   req.IsTeamBased,
		MaxTeamSize:   req.MaxTeamSize,
		CreatedBy:     actor.ID,
	}

	eventID, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = eventID

	s.logger.Info().Int64("eventID", eventID).Int64("createdBy", actor.ID).Msg("Event created")

	resp := toEventResponse(event, actor)
	return &resp, nil
}

// GetAllEvents retrieves events with filtering and pagination
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error) {
	events, total, err := s.eventRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(event, nil))
	}

	return &dto.EventListResponse{
		Events:         responses,
		PaginationInfo: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetEventByID retrieves an event together with the caller's registration state
func (s *eventServiceImpl) GetEventByID(ctx context.Context, eventID, actorID int64) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	creator, err := s.userRepo.GetByID(ctx, event.CreatedBy)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	detail := &dto.EventDetailResponse{
		EventResponse: toEventResponse(event, creator),
	}

	registration, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, actorID)
	if err == nil {
		detail.RegistrationStatus = string(registration.Status)
	} else if !errors.Is(err, apperrors.ErrNotRegistered) {
		return nil, err
	}

	return detail, nil
}

// UpdateEvent applies partial changes to an event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, actor *models.User, eventID int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !canManageEvent(actor, event) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventMode != nil {
		event.EventMode = models.EventMode(*req.EventMode)
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.StartDatetime != nil {
		event.StartDatetime = *req.StartDatetime
	}
	if req.EndDatetime != nil {
		event.EndDatetime = *req.EndDatetime
	}
	if !event.EndDatetime.After(event.StartDatetime) {
		return nil, apperrors.NewBadRequestError("event end must be after its start")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	resp := toEventResponse(event, nil)
	return &resp, nil
}

// UpdateEventBanner stores the uploaded banner and links it to the event
func (s *eventServiceImpl) UpdateEventBanner(ctx context.Context, actor *models.User, eventID int64, fileHeader *multipart.FileHeader) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !canManageEvent(actor, event) {
		return nil, apperrors.ErrPermissionDenied
	}

	bannerURL, err := s.fileStorage.SaveFileWithPath(fileHeader, "event_banners")
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.UpdateBanner(ctx, eventID, bannerURL); err != nil {
		return nil, err
	}

	if event.BannerURL != nil {
		if err := s.fileStorage.DeleteFile(*event.BannerURL); err != nil {
			s.logger.Warn().Err(err).Int64("eventID", eventID).Msg("Failed to delete old event banner")
		}
	}

	event.BannerURL = &bannerURL
	resp := toEventResponse(event, nil)
	return &resp, nil
}

// DeleteEvent removes an event with its registrations and teams
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, actor *models.User, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !canManageEvent(actor, event) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	s.logger.Info().Int64("eventID", eventID).Int64("deletedBy", actor.ID).Msg("Event deleted")
	return nil
}

// Register signs the caller up for an event. Registration closes at the
// event's start time.
func (s *eventServiceImpl) Register(ctx context.Context, actorID, eventID int64) (*dto.EventRegistrationResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.StartDatetime.After(time.Now()) {
		return nil, apperrors.ErrEventStarted
	}

	if _, err := s.registrationRepo.Create(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	registration, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	return &dto.EventRegistrationResponse{
		ID:           registration.ID,
		EventID:      registration.EventID,
		UserID:       registration.UserID,
		Status:       string(registration.Status),
		RegisteredAt: registration.RegisteredAt,
	}, nil
}

// CancelRegistration withdraws the caller's registration. Not allowed once
// the event has started.
func (s *eventServiceImpl) CancelRegistration(ctx context.Context, actorID, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.StartDatetime.After(time.Now()) {
		return apperrors.ErrEventStarted
	}

	return s.registrationRepo.Delete(ctx, eventID, actorID)
}

// MarkAttended flips a registration to ATTENDED. Only event managers may
// do this, and the transition is one way.
func (s *eventServiceImpl) MarkAttended(ctx context.Context, actor *models.User, eventID, userID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !canManageEvent(actor, event) {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err != nil {
		return err
	}

	return s.registrationRepo.UpdateStatus(ctx, eventID, userID, models.RegistrationAttended)
}

// GetRegistrations lists an event's registrations, visible to event managers only
func (s *eventServiceImpl) GetRegistrations(ctx context.Context, actor *models.User, eventID int64) ([]dto.EventRegistrationResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !canManageEvent(actor, event) {
		return nil, apperrors.ErrPermissionDenied
	}

	registrations, err := s.registrationRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0, len(registrations))
	for _, reg := range registrations {
		userIDs = append(userIDs, reg.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EventRegistrationResponse, 0, len(registrations))
	for _, reg := range registrations {
		responses = append(responses, dto.EventRegistrationResponse{
			ID:           reg.ID,
			EventID:      reg.EventID,
			UserID:       reg.UserID,
			Status:       string(reg.Status),
			RegisteredAt: reg.RegisteredAt,
			User:         toUserBasicResponse(users[reg.UserID]),
		})
	}
	return responses, nil
}
