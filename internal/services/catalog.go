package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// Default result limits for the discovery views.
const (
	DefaultFeaturedLimit = 3
	DefaultLocationLimit = 4
	DefaultPopularLimit  = 6
	DefaultCategoryLimit = 12
	DefaultSearchLimit   = 5

	// MaxCatalogLimit caps any caller-supplied limit.
	MaxCatalogLimit = 50

	// MinSearchQueryLen is the shortest query that reaches the store; shorter
	// queries return an empty result without a round-trip.
	MinSearchQueryLen = 2
)

type catalogService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewCatalogService creates the CatalogService over the given event repository.
func NewCatalogService(eventRepo domain.EventRepository, timeout time.Duration) domain.CatalogService {
	return &catalogService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// normalizeLimit substitutes def for non-positive limits and clamps to MaxCatalogLimit.
func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxCatalogLimit {
		return MaxCatalogLimit
	}
	return limit
}

// Featured returns upcoming events ranked by registration count, highest first.
func (s *catalogService) Featured(ctx context.Context, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListUpcomingByPopularity(ctx, normalizeLimit(limit, DefaultFeaturedLimit))
	if err != nil {
		return nil, fmt.Errorf("list featured events: %w", err)
	}
	return events, nil
}

// Popular is the same popularity ranking as Featured with a larger default limit.
func (s *catalogService) Popular(ctx context.Context, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListUpcomingByPopularity(ctx, normalizeLimit(limit, DefaultPopularLimit))
	if err != nil {
		return nil, fmt.Errorf("list popular events: %w", err)
	}
	return events, nil
}

// ByLocation filters upcoming events by city when given, else by state, else
// returns the unfiltered upcoming set. City and state match case-insensitively.
func (s *catalogService) ByLocation(ctx context.Context, city, state string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	n := normalizeLimit(limit, DefaultLocationLimit)

	var events []*domain.Event
	var err error
	switch {
	case strings.TrimSpace(city) != "":
		events, err = s.eventRepo.ListUpcomingByCity(ctx, strings.TrimSpace(city), n)
	case strings.TrimSpace(state) != "":
		events, err = s.eventRepo.ListUpcomingByState(ctx, strings.TrimSpace(state), n)
	default:
		events, err = s.eventRepo.ListUpcoming(ctx, n)
	}
	if err != nil {
		return nil, fmt.Errorf("list events by location: %w", err)
	}
	return events, nil
}

// ByCategory returns upcoming events in the given category.
func (s *catalogService) ByCategory(ctx context.Context, category string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if !domain.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	events, err := s.eventRepo.ListUpcomingByCategory(ctx, category, normalizeLimit(limit, DefaultCategoryLimit))
	if err != nil {
		return nil, fmt.Errorf("list events by category: %w", err)
	}
	return events, nil
}

// CategoryCounts returns the number of upcoming events per category id.
// Categories without upcoming events are absent from the map.
func (s *catalogService) CategoryCounts(ctx context.Context) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	counts, err := s.eventRepo.CountUpcomingByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events by category: %w", err)
	}
	return counts, nil
}

// Search matches upcoming events by title. Queries shorter than
// MinSearchQueryLen return an empty result without querying the store.
func (s *catalogService) Search(ctx context.Context, query string, limit int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinSearchQueryLen {
		return []*domain.Event{}, nil
	}
	events, err := s.eventRepo.SearchUpcoming(ctx, q, normalizeLimit(limit, DefaultSearchLimit))
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

func (s *catalogService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}
