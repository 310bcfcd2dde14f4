package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the handlers that need an authenticated identity.
func NewRouter(
	catalog *controllers.CatalogController,
	events *controllers.EventController,
	users *controllers.UserController,
	attendees *controllers.AttendeeController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public catalog
	mux.HandleFunc("GET /events/featured", catalog.Featured)
	mux.HandleFunc("GET /events/popular", catalog.Popular)
	mux.HandleFunc("GET /events/location", catalog.ByLocation)
	mux.HandleFunc("GET /events/search", catalog.Search)
	mux.HandleFunc("GET /events/category/{category}", catalog.ByCategory)
	mux.HandleFunc("GET /events/{slug}", catalog.GetEventBySlug)
	mux.HandleFunc("GET /explore/{locationSlug}", catalog.Explore)
	mux.HandleFunc("GET /categories/counts", catalog.CategoryCounts)

	// Event lifecycle
	mux.HandleFunc("POST /events", requireAuth(events.Create))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(events.Delete))
	mux.HandleFunc("GET /users/me/events", requireAuth(events.MyEvents))

	// Account
	mux.HandleFunc("GET /users/me", requireAuth(users.GetMe))
	mux.HandleFunc("POST /users/me/onboarding", requireAuth(users.CompleteOnboarding))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", requireAuth(attendees.Register))
	mux.HandleFunc("DELETE /events/{eventID}/registrations", requireAuth(attendees.Cancel))
	mux.HandleFunc("GET /users/me/tickets", requireAuth(attendees.MyTickets))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
