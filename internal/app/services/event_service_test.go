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

type eventServiceFixture struct {
	svc              EventService
	eventRepo        *mockEventRepo
	registrationRepo *mockEventRegistrationRepo
	userRepo         *mockUserRepo
}

func setupEventService() *eventServiceFixture {
	eventRepo := newMockEventRepo()
	registrationRepo := newMockEventRegistrationRepo()
	userRepo := newMockUserRepo()
	svc := NewEventService(eventRepo, registrationRepo, userRepo, nil, zerolog.Nop())
	return &eventServiceFixture{
		svc:              svc,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
	}
}

func (f *eventServiceFixture) createEvent(t *testing.T, faculty *models.User, start, end time.Time) *dto.EventResponse {
	t.Helper()
	event, err := f.svc.CreateEvent(context.Background(), faculty, &dto.CreateEventRequest{
		Title:         "Tech Talk",
		Description:   "Distributed systems in practice",
		EventMode:     string(models.EventModeOffline),
		StartDatetime: start,
		EndDatetime:   end,
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return event
}

func TestCreateEvent_StudentForbidden(t *testing.T) {
	f := setupEventService()
	student := testUser(f.userRepo, 1, models.RoleStudent)

	_, err := f.svc.CreateEvent(context.Background(), student, &dto.CreateEventRequest{
		Title:         "X",
		Description:   "Y",
		EventMode:     string(models.EventModeOnline),
		StartDatetime: time.Now().Add(time.Hour),
		EndDatetime:   time.Now().Add(2 * time.Hour),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got: %v", err)
	}
}

func TestCreateEvent_EndBeforeStart(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)

	_, err := f.svc.CreateEvent(context.Background(), faculty, &dto.CreateEventRequest{
		Title:         "X",
		Description:   "Y",
		EventMode:     string(models.EventModeOnline),
		StartDatetime: time.Now().Add(2 * time.Hour),
		EndDatetime:   time.Now().Add(time.Hour),
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request for end before start, got: %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))

	reg, err := f.svc.Register(context.Background(), student.ID, event.ID)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Status != string(models.RegistrationRegistered) {
		t.Errorf("expected REGISTERED status, got %s", reg.Status)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))

	if _, err := f.svc.Register(context.Background(), student.ID, event.ID); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := f.svc.Register(context.Background(), student.ID, event.ID)
	if !errors.Is(err, apperrors.ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got: %v", err)
	}
}

func TestRegister_AfterStart(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)

	event := &models.Event{
		Title:         "Started",
		StartDatetime: time.Now().Add(-time.Hour),
		EndDatetime:   time.Now().Add(time.Hour),
		CreatedBy:     faculty.ID,
	}
	f.eventRepo.Create(context.Background(), event)

	_, err := f.svc.Register(context.Background(), student.ID, event.ID)
	if !errors.Is(err, apperrors.ErrEventStarted) {
		t.Errorf("expected ErrEventStarted, got: %v", err)
	}
}

func TestCancelRegistration_BeforeStartOnly(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))
	f.svc.Register(context.Background(), student.ID, event.ID)

	if err := f.svc.CancelRegistration(context.Background(), student.ID, event.ID); err != nil {
		t.Fatalf("CancelRegistration failed: %v", err)
	}
	if _, err := f.registrationRepo.GetByEventAndUser(context.Background(), event.ID, student.ID); !errors.Is(err, apperrors.ErrNotRegistered) {
		t.Errorf("registration should be removed, got: %v", err)
	}

	// Once the event has started cancellation is refused
	stored, _ := f.eventRepo.GetByID(context.Background(), event.ID)
	f.registrationRepo.Create(context.Background(), event.ID, student.ID)
	stored.StartDatetime = time.Now().Add(-time.Hour)
	err := f.svc.CancelRegistration(context.Background(), student.ID, event.ID)
	if !errors.Is(err, apperrors.ErrEventStarted) {
		t.Errorf("expected ErrEventStarted, got: %v", err)
	}
}

func TestCancelRegistration_NotRegistered(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))

	err := f.svc.CancelRegistration(context.Background(), student.ID, event.ID)
	if !errors.Is(err, apperrors.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got: %v", err)
	}
}

func TestMarkAttended_CreatorOnly(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	other := testUser(f.userRepo, 2, models.RoleFaculty)
	student := testUser(f.userRepo, 3, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))
	f.svc.Register(context.Background(), student.ID, event.ID)

	err := f.svc.MarkAttended(context.Background(), other, event.ID, student.ID)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-creator, got: %v", err)
	}

	if err := f.svc.MarkAttended(context.Background(), faculty, event.ID, student.ID); err != nil {
		t.Fatalf("MarkAttended failed: %v", err)
	}
	reg, _ := f.registrationRepo.GetByEventAndUser(context.Background(), event.ID, student.ID)
	if reg.Status != models.RegistrationAttended {
		t.Errorf("expected ATTENDED status, got %s", reg.Status)
	}
}

func TestGetEventByID_RegistrationProjection(t *testing.T) {
	f := setupEventService()
	faculty := testUser(f.userRepo, 1, models.RoleFaculty)
	student := testUser(f.userRepo, 2, models.RoleStudent)
	event := f.createEvent(t, faculty, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))
	f.svc.Register(context.Background(), student.ID, event.ID)

	detail, err := f.svc.GetEventByID(context.Background(), event.ID, student.ID)
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}
	if detail.RegistrationStatus != string(models.RegistrationRegistered) {
		t.Errorf("expected REGISTERED projection, got %q", detail.RegistrationStatus)
	}

	unregistered, err := f.svc.GetEventByID(context.Background(), event.ID, faculty.ID)
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}
	if unregistered.RegistrationStatus != "" {
		t.Errorf("expected empty projection for unregistered viewer, got %q", unregistered.RegistrationStatus)
	}
}
