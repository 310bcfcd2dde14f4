package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// OnboardingRequest is the request body for POST /users/me/onboarding.
type OnboardingRequest struct {
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Interests []string `json:"interests"`
}

// Validate implements Validator.
func (o OnboardingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(o.City) == "" {
		errs = append(errs, "city is required")
	}
	if strings.TrimSpace(o.State) == "" {
		errs = append(errs, "state is required")
	}
	if strings.TrimSpace(o.Country) == "" {
		errs = append(errs, "country is required")
	}
	if len(o.Interests) == 0 {
		errs = append(errs, "at least one interest is required")
	}
	return errs
}

// UserSuccessResponse is the success envelope for user endpoints.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserController handles the account endpoints.
type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
}

// NewUserController creates a UserController.
func NewUserController(logger *slog.Logger, users domain.UserService) *UserController {
	return &UserController{
		Logger: logger,
		Users:  users,
	}
}

// GetMe godoc
// @Summary Get current user
// @Description Returns the authenticated user's account, creating it on first sign-in from the token claims. Requires Bearer token.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.UserSuccessResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me [get]
func (c *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Users.UpsertFromIdentity(r.Context(), *identity)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// CompleteOnboarding godoc
// @Summary Complete onboarding
// @Description Stores the authenticated user's home location and interests and marks onboarding done. The city and state must match the canonical region list; interests must be known category ids. Requires Bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OnboardingRequest true "Home location and interests"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/onboarding [post]
func (c *UserController) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req OnboardingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	loc := domain.Location{
		City:    req.City,
		State:   req.State,
		Country: req.Country,
	}
	user, err := c.Users.CompleteOnboarding(r.Context(), identity.TokenIdentifier, loc, req.Interests)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
