package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventboard/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates the quota-gated event lifecycle service.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// nonSlugRunes matches every run of characters outside [a-z0-9] in a
// lowercased title.
var nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)

// deriveSlug lowercases the title, collapses non-alphanumeric runs into
// hyphens, trims edge hyphens, and appends the creation instant in
// milliseconds so duplicate titles still get unique slugs.
func deriveSlug(title string, at time.Time) string {
	s := nonSlugRunes.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	return fmt.Sprintf("%s-%d", s, at.UnixMilli())
}

func validateCreateInput(input domain.CreateEventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if !input.EndDate.After(input.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}
	if input.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", domain.ErrInvalidInput)
	}
	if input.LocationType != domain.LocationPhysical && input.LocationType != domain.LocationOnline {
		return fmt.Errorf("%w: location type must be %q or %q", domain.ErrInvalidInput, domain.LocationPhysical, domain.LocationOnline)
	}
	if strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.Country) == "" {
		return fmt.Errorf("%w: city and country are required", domain.ErrInvalidInput)
	}
	if input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", domain.ErrInvalidInput)
	}
	switch input.TicketType {
	case domain.TicketFree:
	case domain.TicketPaid:
		if input.TicketPrice == nil || *input.TicketPrice < 0 {
			return fmt.Errorf("%w: paid tickets need a non-negative price", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: ticket type must be %q or %q", domain.ErrInvalidInput, domain.TicketFree, domain.TicketPaid)
	}
	return nil
}

// Create validates the input, enforces the free-tier quota and the theme
// customization entitlement, derives the slug, and persists the event
// together with the organizer's counter increment as one unit of work.
//
// Theme policy: a non-default theme color requested without a paid
// entitlement is a hard ErrFeatureGated failure; an absent or default
// request stores the default color.
func (s *eventService) Create(ctx context.Context, input domain.CreateEventInput, organizer *domain.User, hasPro bool) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if organizer == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	// Fast-path quota check to avoid building the event for a caller who has
	// already spent their free slot. The repository repeats the check as an
	// atomic conditional update, which is what holds under concurrent calls.
	if !hasPro && organizer.FreeEventsCreated >= domain.FreeEventLimit {
		return nil, domain.ErrQuotaExceeded
	}

	themeColor := input.ThemeColor
	if !hasPro {
		if themeColor != "" && themeColor != domain.DefaultThemeColor {
			return nil, domain.ErrFeatureGated
		}
		themeColor = domain.DefaultThemeColor
	} else if themeColor == "" {
		themeColor = domain.DefaultThemeColor
	}

	event := &domain.Event{
		Title:             strings.TrimSpace(input.Title),
		Slug:              deriveSlug(input.Title, now),
		Description:       input.Description,
		Category:          input.Category,
		Tags:              input.Tags,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Timezone:          input.Timezone,
		LocationType:      input.LocationType,
		Venue:             input.Venue,
		Address:           input.Address,
		City:              strings.TrimSpace(input.City),
		State:             input.State,
		Country:           strings.TrimSpace(input.Country),
		Capacity:          input.Capacity,
		TicketType:        input.TicketType,
		TicketPrice:       input.TicketPrice,
		CoverImage:        input.CoverImage,
		ThemeColor:        themeColor,
		OrganizerID:       organizer.ID,
		OrganizerName:     organizer.Name,
		RegistrationCount: 0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	freeLimit := domain.FreeEventLimit
	if hasPro {
		freeLimit = domain.UnlimitedEvents
	}
	if err := s.eventRepo.CreateWithQuota(ctx, event, freeLimit); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return nil, domain.ErrQuotaExceeded
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Delete removes the event, its registrations, and decrements the organizer's
// free-event counter. Only the organizer may delete.
func (s *eventService) Delete(ctx context.Context, eventID string, actor *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if actor == nil {
		return domain.ErrUserNotFound
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != actor.ID {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.DeleteCascade(ctx, eventID, actor.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
