package domain

import (
	"context"
	"time"
)

// DefaultThemeColor is the theme applied to every event created without a
// paid entitlement.
const DefaultThemeColor = "#1c1c1c"

// Location types for an event.
const (
	LocationPhysical = "physical"
	LocationOnline   = "online"
)

// Ticket types for an event.
const (
	TicketFree = "free"
	TicketPaid = "paid"
)

// Categories is the fixed category id set events are filed under.
var Categories = []string{
	"music",
	"technology",
	"business",
	"food-drink",
	"arts-culture",
	"sports-fitness",
	"education",
	"nightlife",
	"community",
	"other",
}

// IsValidCategory reports whether id is one of the fixed category ids.
func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c == id {
			return true
		}
	}
	return false
}

// Event represents a published event in the catalog.
// swagger:model Event
type Event struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Tags              []string  `json:"tags"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Timezone          string    `json:"timezone"`
	LocationType      string    `json:"location_type"`
	Venue             *string   `json:"venue,omitempty"`
	Address           *string   `json:"address,omitempty"`
	City              string    `json:"city"`
	State             *string   `json:"state,omitempty"`
	Country           string    `json:"country"`
	Capacity          int       `json:"capacity"`
	TicketType        string    `json:"ticket_type"`
	TicketPrice       *float64  `json:"ticket_price,omitempty"`
	CoverImage        *string   `json:"cover_image,omitempty"`
	ThemeColor        string    `json:"theme_color"`
	OrganizerID       string    `json:"organizer_id"`
	OrganizerName     string    `json:"organizer_name"`
	RegistrationCount int       `json:"registration_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateEventInput carries the caller-supplied fields for a new event.
// Organizer, slug, counters, and timestamps are derived by the service.
type CreateEventInput struct {
	Title        string
	Description  string
	Category     string
	Tags         []string
	StartDate    time.Time
	EndDate      time.Time
	Timezone     string
	LocationType string
	Venue        *string
	Address      *string
	City         string
	State        *string
	Country      string
	Capacity     int
	TicketType   string
	TicketPrice  *float64
	CoverImage   *string
	ThemeColor   string
}

// FreeEventLimit is the number of events a user without a paid entitlement
// may have created at one time.
const FreeEventLimit = 1

// UnlimitedEvents disables the quota check in EventRepository.CreateWithQuota.
const UnlimitedEvents = -1

// EventRepository defines the interface for event storage. "Upcoming" in the
// list methods means events whose start date is at or after the current
// instant; past events never surface in discovery.
type EventRepository interface {
	// CreateWithQuota inserts the event and increments the organizer's
	// free-event counter as one atomic unit. If freeLimit is non-negative and
	// the counter is already at the limit, nothing is written and
	// ErrQuotaExceeded is returned.
	CreateWithQuota(ctx context.Context, event *Event, freeLimit int) error
	// DeleteCascade removes the event's registrations, the event itself, and
	// decrements the organizer's free-event counter (floored at zero) as one
	// atomic unit.
	DeleteCascade(ctx context.Context, eventID, organizerID string) error

	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)

	ListUpcomingByPopularity(ctx context.Context, limit int) ([]*Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*Event, error)
	ListUpcomingByCity(ctx context.Context, city string, limit int) ([]*Event, error)
	ListUpcomingByState(ctx context.Context, state string, limit int) ([]*Event, error)
	ListUpcomingByCategory(ctx context.Context, category string, limit int) ([]*Event, error)
	CountUpcomingByCategory(ctx context.Context) (map[string]int, error)
	SearchUpcoming(ctx context.Context, query string, limit int) ([]*Event, error)
}

// EventService defines the quota-gated event lifecycle.
type EventService interface {
	// Create validates the input, enforces the free-tier quota and theme
	// customization entitlement, derives the slug, and persists the event.
	Create(ctx context.Context, input CreateEventInput, organizer *User, hasPro bool) (*Event, error)
	// Delete removes the event and its registrations; only the organizer may
	// delete, and the organizer's free-event counter is decremented.
	Delete(ctx context.Context, eventID string, actor *User) error
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)
}

// CatalogService assembles the discovery views over upcoming events.
type CatalogService interface {
	Featured(ctx context.Context, limit int) ([]*Event, error)
	Popular(ctx context.Context, limit int) ([]*Event, error)
	ByLocation(ctx context.Context, city, state string, limit int) ([]*Event, error)
	ByCategory(ctx context.Context, category string, limit int) ([]*Event, error)
	CategoryCounts(ctx context.Context) (map[string]int, error)
	Search(ctx context.Context, query string, limit int) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
}
