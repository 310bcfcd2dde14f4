package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventboard/internal/domain"
)

type attendeeService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	publisher        domain.RegistrationPublisher
	logger           *slog.Logger
	contextTimeout   time.Duration
}

// NewAttendeeService creates the AttendeeService. The publisher receives a
// notification for every new registration; publish failures are logged and do
// not fail the registration.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	publisher domain.RegistrationPublisher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		publisher:        publisher,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *attendeeService) RegisterForEvent(ctx context.Context, eventID string, user *domain.User) (*domain.Registration, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if user == nil {
		return nil, false, domain.ErrUserNotFound
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}
	if event.StartDate.Before(time.Now()) {
		return nil, false, fmt.Errorf("%w: event has already started", domain.ErrInvalidInput)
	}
	if event.RegistrationCount >= event.Capacity {
		return nil, false, fmt.Errorf("%w: event is at capacity", domain.ErrInvalidInput)
	}

	// Registration is idempotent per user.
	if existing, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, user.ID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get registration: %w", err)
	}

	now := time.Now()
	reg := domain.NewRegistration(eventID, user.ID, now, now)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("create registration: %w", err)
	}

	if err := s.publisher.PublishRegistration(domain.RegistrationMessage{
		RegistrationID: reg.ID,
		EventID:        event.ID,
		EventTitle:     event.Title,
		EventSlug:      event.Slug,
		EventCity:      event.City,
		StartDate:      event.StartDate,
		UserEmail:      user.Email,
		UserName:       user.Name,
	}); err != nil {
		s.logger.WarnContext(ctx, "registration notification not published",
			"registration_id", reg.ID, "event_id", event.ID, "err", err)
	}
	return reg, true, nil
}

func (s *attendeeService) CancelRegistration(ctx context.Context, eventID string, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := s.registrationRepo.Delete(ctx, eventID, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (s *attendeeService) ListMyTickets(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	// Fetch events one by one. Catalog sizes keep this cheap; registrations
	// for the same event share one lookup.
	eventsByID := make(map[string]*domain.Event)
	tickets := make([]*domain.Ticket, 0, len(regs))
	for _, reg := range regs {
		event, ok := eventsByID[reg.EventID]
		if !ok {
			event, err = s.eventRepo.GetByID(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Event deleted with a registration left behind; skip.
					continue
				}
				return nil, fmt.Errorf("get event for registration: %w", err)
			}
			eventsByID[reg.EventID] = event
		}
		tickets = append(tickets, &domain.Ticket{Registration: reg, Event: event})
	}
	return tickets, nil
}
