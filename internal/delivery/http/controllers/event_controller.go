package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Timezone     string    `json:"timezone"`
	LocationType string    `json:"location_type"`
	Venue        *string   `json:"venue"`
	Address      *string   `json:"address"`
	City         string    `json:"city"`
	State        *string   `json:"state"`
	Country      string    `json:"country"`
	Capacity     int       `json:"capacity"`
	TicketType   string    `json:"ticket_type"`
	TicketPrice  *float64  `json:"ticket_price"`
	CoverImage   *string   `json:"cover_image"`
	ThemeColor   string    `json:"theme_color"`
}

// Validate implements Validator. The service re-checks the full rule set; this
// catches the obviously malformed bodies before a user lookup happens.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, "category is required")
	}
	if c.StartDate.IsZero() {
		errs = append(errs, "start_date is required")
	}
	if c.EndDate.IsZero() {
		errs = append(errs, "end_date is required")
	}
	if c.Capacity < 1 {
		errs = append(errs, "capacity must be at least 1")
	}
	return errs
}

func (c CreateEventRequest) toInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:        c.Title,
		Description:  c.Description,
		Category:     c.Category,
		Tags:         c.Tags,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Timezone:     c.Timezone,
		LocationType: c.LocationType,
		Venue:        c.Venue,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Country:      c.Country,
		Capacity:     c.Capacity,
		TicketType:   c.TicketType,
		TicketPrice:  c.TicketPrice,
		CoverImage:   c.CoverImage,
		ThemeColor:   c.ThemeColor,
	}
}

// EventController handles the organizer-facing event lifecycle endpoints.
type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
	Users  domain.UserService
}

// NewEventController creates an EventController.
func NewEventController(logger *slog.Logger, events domain.EventService, users domain.UserService) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
		Users:  users,
	}
}

// resolveUser loads the account for the authenticated identity, creating it on
// first sign-in.
func (c *EventController) resolveUser(w http.ResponseWriter, r *http.Request) (*domain.User, *domain.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, nil, false
	}
	user, err := c.Users.UpsertFromIdentity(r.Context(), *identity)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return nil, nil, false
	}
	return user, identity, true
}

// Create godoc
// @Summary Create an event
// @Description Creates an event for the authenticated organizer. Users without a paid entitlement may hold one free event at a time and must use the default theme color. Requires Bearer token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event fields"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: quota_exceeded or feature_gated"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	user, identity, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.Create(r.Context(), req.toInput(), user, identity.HasPro)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and all its registrations. Only the organizer may delete; the organizer's free-event counter is decremented. Requires Bearer token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains {deleted: true}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	user, _, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	if err := c.Events.Delete(r.Context(), r.PathValue("eventID"), user); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// MyEvents godoc
// @Summary List the authenticated user's events
// @Description Returns the events organized by the authenticated user, newest first. Requires Bearer token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/events [get]
func (c *EventController) MyEvents(w http.ResponseWriter, r *http.Request) {
	user, _, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	events, err := c.Events.ListByOrganizer(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
