package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// EventController handles event and registration operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent handles event creation, faculty and admins only
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// GetAllEvents handles listing events
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by title or description"
// @Param mode query string false "Filter by event mode" Enums(ONLINE, OFFLINE, HYBRID)
// @Param teamBased query bool false "Filter by team based flag"
// @Param upcoming query bool false "Only events that have not started"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filter := &dto.EventFilterRequest{Page: page, PageSize: pageSize}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if mode := ctx.Query("mode"); mode != "" {
		filter.Mode = &mode
	}
	if teamBasedStr := ctx.Query("teamBased"); teamBasedStr != "" {
		if teamBased, err := strconv.ParseBool(teamBasedStr); err == nil {
			filter.TeamBased = &teamBased
		}
	}
	if upcoming, err := strconv.ParseBool(ctx.Query("upcoming")); err == nil {
		filter.UpcomingOnly = upcoming
	}

	events, err := c.eventService.GetAllEvents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetEventByID handles retrieving an event with the caller's registration state
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse} "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), eventID, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEvent handles partial event updates
// @Summary Update an event
// @Description Applies partial changes. Event creator and platform admins only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event changes"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), user, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEventBanner handles banner upload
// @Summary Upload event banner
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param banner formData file true "Banner image"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Banner updated"
// @Router /events/{id}/banner [put]
func (c *EventController) UpdateEventBanner(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	fileHeader, err := ctx.FormFile("banner")
	if err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEventBanner(ctx.Request.Context(), user, eventID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent handles event deletion
// @Summary Delete an event
// @Description Removes the event with its registrations and teams
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), user, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted"))
}

// Register handles event signup
// @Summary Register for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.EventRegistrationResponse} "Registered"
// @Failure 409 {object} dto.ErrorResponse "Already registered or event started"
// @Router /events/{id}/registrations [post]
func (c *EventController) Register(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	registration, err := c.eventService.Register(ctx.Request.Context(), user.ID, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registration))
}

// CancelRegistration handles registration withdrawal
// @Summary Cancel own registration
// @Description Withdraws the caller's registration. Not allowed once the event has started.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Registration cancelled"
// @Failure 409 {object} dto.ErrorResponse "Event already started"
// @Router /events/{id}/registrations [delete]
func (c *EventController) CancelRegistration(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.eventService.CancelRegistration(ctx.Request.Context(), user.ID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Registration cancelled"))
}

// MarkAttended handles flipping a registration to attended
// @Summary Mark a registrant as attended
// @Description One way status flip. Event creator and platform admins only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param userId path int true "Registrant's user ID"
// @Success 200 {object} dto.APIResponse "Marked attended"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /events/{id}/registrations/{userId}/attendance [put]
func (c *EventController) MarkAttended(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	if err := c.eventService.MarkAttended(ctx.Request.Context(), user, eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Attendance recorded"))
}

// GetRegistrations handles listing an event's registrations
// @Summary List event registrations
// @Description Event creator and platform admins only
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EventRegistrationResponse} "Registrations retrieved"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /events/{id}/registrations [get]
func (c *EventController) GetRegistrations(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(ctx)

	registrations, err := c.eventService.GetRegistrations(ctx.Request.Context(), user, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}
