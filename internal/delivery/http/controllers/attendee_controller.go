package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// RegistrationSuccessResponse is the success envelope for POST /events/{eventID}/registrations.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// TicketListSuccessResponse is the success envelope for GET /users/me/tickets.
type TicketListSuccessResponse struct {
	Data  []*domain.Ticket  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AttendeeController handles registration and ticket endpoints.
type AttendeeController struct {
	Logger    *slog.Logger
	Attendees domain.AttendeeService
	Users     domain.UserService
}

// NewAttendeeController creates an AttendeeController.
func NewAttendeeController(logger *slog.Logger, attendees domain.AttendeeService, users domain.UserService) *AttendeeController {
	return &AttendeeController{
		Logger:    logger,
		Attendees: attendees,
		Users:     users,
	}
}

func (c *AttendeeController) resolveUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	user, err := c.Users.UpsertFromIdentity(r.Context(), *identity)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return nil, false
	}
	return user, true
}

// Register godoc
// @Summary Register for an event
// @Description Registers the authenticated user for an upcoming event. Registering twice returns the existing registration with 200. Requires Bearer token.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event id"
// @Success 200 {object} controllers.RegistrationSuccessResponse "already registered; data contains the existing registration"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the new registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (event started or full)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	user, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	reg, created, err := c.Attendees.RegisterForEvent(r.Context(), r.PathValue("eventID"), user)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, reg)
}

// Cancel godoc
// @Summary Cancel a registration
// @Description Cancels the authenticated user's registration for the event. Requires Bearer token.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains {cancelled: true}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [delete]
func (c *AttendeeController) Cancel(w http.ResponseWriter, r *http.Request) {
	user, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	if err := c.Attendees.CancelRegistration(r.Context(), r.PathValue("eventID"), user); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"cancelled": true})
}

// MyTickets godoc
// @Summary List the authenticated user's tickets
// @Description Returns the user's registrations joined with their events, newest first. Requires Bearer token.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.TicketListSuccessResponse "data contains the tickets"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/tickets [get]
func (c *AttendeeController) MyTickets(w http.ResponseWriter, r *http.Request) {
	user, ok := c.resolveUser(w, r)
	if !ok {
		return
	}
	tickets, err := c.Attendees.ListMyTickets(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tickets)
}
