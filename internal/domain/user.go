package domain

import (
	"context"
	"time"
)

// Location is a user's home location, set during onboarding.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
}

// User represents an account created on first external-auth sign-in.
// TokenIdentifier is the opaque identifier issued by the external provider.
// swagger:model User
type User struct {
	ID                     string    `json:"id"`
	TokenIdentifier        string    `json:"-"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	ImageURL               *string   `json:"image_url,omitempty"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	Location               *Location `json:"location,omitempty"`
	Interests              []string  `json:"interests,omitempty"`
	FreeEventsCreated      int       `json:"free_events_created"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given identity fields. ID is set by the
// repository on create.
func NewUser(tokenIdentifier, name, email string, imageURL *string, createdAt, updatedAt time.Time) *User {
	return &User{
		TokenIdentifier: tokenIdentifier,
		Name:            name,
		Email:           email,
		ImageURL:        imageURL,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// Identity is the verified claim set extracted from an external-auth token.
type Identity struct {
	TokenIdentifier string
	Name            string
	Email           string
	ImageURL        *string
	// HasPro is the paid-tier entitlement asserted by the identity provider.
	HasPro bool
}

// TokenIssuer issues signed tokens for an identity. Production tokens come
// from the external provider; the issuer exists for tooling and tests.
type TokenIssuer interface {
	Issue(identity Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the identity it asserts.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	// UpsertByToken inserts the user if no row with the same token identifier
	// exists, otherwise returns the existing row unchanged.
	UpsertByToken(ctx context.Context, user *User) (*User, error)
	GetByToken(ctx context.Context, tokenIdentifier string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// CompleteOnboarding sets the location, interests, and onboarding flag.
	CompleteOnboarding(ctx context.Context, userID string, location Location, interests []string) (*User, error)
}

// UserService defines account upsert and onboarding operations.
type UserService interface {
	// UpsertFromIdentity returns the stored user for the identity, creating it
	// on first sign-in.
	UpsertFromIdentity(ctx context.Context, identity Identity) (*User, error)
	GetByToken(ctx context.Context, tokenIdentifier string) (*User, error)
	// CompleteOnboarding validates the location against the canonical region
	// list and the interests against the category set, then stores them.
	CompleteOnboarding(ctx context.Context, tokenIdentifier string, location Location, interests []string) (*User, error)
}
