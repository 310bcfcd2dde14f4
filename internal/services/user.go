package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/location"
)

// SupportedCountry is the country scope of the canonical region list.
const SupportedCountry = "India"

type userService struct {
	userRepo       domain.UserRepository
	regions        *location.RegionIndex
	contextTimeout time.Duration
}

// NewUserService creates the UserService. The region index validates
// onboarding locations against the canonical state and city lists.
func NewUserService(userRepo domain.UserRepository, regions *location.RegionIndex, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		regions:        regions,
		contextTimeout: timeout,
	}
}

// UpsertFromIdentity returns the stored user for the verified identity,
// creating the account on first sign-in.
func (s *userService) UpsertFromIdentity(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity.TokenIdentifier == "" {
		return nil, fmt.Errorf("%w: token identifier is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	user, err := s.userRepo.UpsertByToken(ctx, domain.NewUser(
		identity.TokenIdentifier, identity.Name, identity.Email, identity.ImageURL, now, now,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByToken(ctx context.Context, tokenIdentifier string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByToken(ctx, tokenIdentifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return user, nil
}

// CompleteOnboarding validates the location against the canonical region list
// and the interests against the category set, then stores both and sets the
// onboarding flag. The stored city and state are the canonical names.
func (s *userService) CompleteOnboarding(ctx context.Context, tokenIdentifier string, loc domain.Location, interests []string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByToken(ctx, tokenIdentifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(loc.Country), SupportedCountry) {
		return nil, fmt.Errorf("%w: country must be %s", domain.ErrInvalidInput, SupportedCountry)
	}
	state, ok := s.regions.StateByName(loc.State)
	if !ok {
		return nil, fmt.Errorf("%w: unknown state %q", domain.ErrInvalidInput, loc.State)
	}
	city, ok := s.regions.CityInState(state, loc.City)
	if !ok {
		return nil, fmt.Errorf("%w: city %q is not in %s", domain.ErrInvalidInput, loc.City, state)
	}
	for _, interest := range interests {
		if !domain.IsValidCategory(interest) {
			return nil, fmt.Errorf("%w: unknown interest %q", domain.ErrInvalidInput, interest)
		}
	}

	updated, err := s.userRepo.CompleteOnboarding(ctx, user.ID, domain.Location{
		City:    city,
		State:   state,
		Country: SupportedCountry,
	}, interests)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("complete onboarding: %w", err)
	}
	return updated, nil
}
