package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/location"
)

// EventListSuccessResponse is the success envelope for event list endpoints.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventSuccessResponse is the success envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CategoryCountsSuccessResponse is the success envelope for GET /categories/counts.
type CategoryCountsSuccessResponse struct {
	Data  map[string]int    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CatalogController handles the public discovery endpoints.
type CatalogController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
	Regions *location.RegionIndex
}

// NewCatalogController creates a CatalogController.
func NewCatalogController(logger *slog.Logger, catalog domain.CatalogService, regions *location.RegionIndex) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Catalog: catalog,
		Regions: regions,
	}
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Returns the event published under the given slug.
// @Tags catalog
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *CatalogController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, err := c.Catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Featured godoc
// @Summary List featured events
// @Description Returns upcoming events ordered by registration count descending.
// @Tags catalog
// @Produce json
// @Param limit query int false "Maximum number of events (default 3, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/featured [get]
func (c *CatalogController) Featured(w http.ResponseWriter, r *http.Request) {
	events, err := c.Catalog.Featured(r.Context(), helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Popular godoc
// @Summary List popular events
// @Description Returns upcoming events ordered by registration count descending.
// @Tags catalog
// @Produce json
// @Param limit query int false "Maximum number of events (default 6, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/popular [get]
func (c *CatalogController) Popular(w http.ResponseWriter, r *http.Request) {
	events, err := c.Catalog.Popular(r.Context(), helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ByLocation godoc
// @Summary List events by location
// @Description Returns upcoming events in the given city, falling back to the state when the city has none.
// @Tags catalog
// @Produce json
// @Param city query string false "City name (case-insensitive)"
// @Param state query string false "State name (case-insensitive)"
// @Param limit query int false "Maximum number of events (default 4, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/location [get]
func (c *CatalogController) ByLocation(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	state := strings.TrimSpace(r.URL.Query().Get("state"))
	events, err := c.Catalog.ByLocation(r.Context(), city, state, helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Explore godoc
// @Summary List events for a location slug
// @Description Decodes a city-state slug such as "pune-maharashtra" against the canonical region list and returns upcoming events there.
// @Tags catalog
// @Produce json
// @Param locationSlug path string true "Location slug, e.g. pune-maharashtra"
// @Param limit query int false "Maximum number of events (default 4, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /explore/{locationSlug} [get]
func (c *CatalogController) Explore(w http.ResponseWriter, r *http.Request) {
	decoded := location.DecodeSlug(r.PathValue("locationSlug"), c.Regions)
	if !decoded.Valid {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unrecognized location slug")
		return
	}
	events, err := c.Catalog.ByLocation(r.Context(), decoded.City, decoded.State, helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ByCategory godoc
// @Summary List events by category
// @Description Returns upcoming events filed under the given category id.
// @Tags catalog
// @Produce json
// @Param category path string true "Category id, e.g. music"
// @Param limit query int false "Maximum number of events (default 12, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/category/{category} [get]
func (c *CatalogController) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	events, err := c.Catalog.ByCategory(r.Context(), category, helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CategoryCounts godoc
// @Summary Count upcoming events per category
// @Description Returns a mapping of category id to the number of upcoming events in it.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.CategoryCountsSuccessResponse "data contains the counts"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories/counts [get]
func (c *CatalogController) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := c.Catalog.CategoryCounts(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}

// Search godoc
// @Summary Search upcoming events by title
// @Description Case-insensitive substring match over event titles. Queries shorter than 2 characters return an empty list.
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum number of events (default 5, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/search [get]
func (c *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	events, err := c.Catalog.Search(r.Context(), query, helpers.ParseLimit(r))
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
