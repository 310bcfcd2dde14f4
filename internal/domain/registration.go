package domain

import (
	"context"
	"time"
)

// Registration represents an attendee's ticket for an event.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRegistration creates a new Registration. ID is set by the repository on create.
func NewRegistration(eventID, userID string, createdAt, updatedAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Ticket bundles a registration with its event for the my-tickets view.
type Ticket struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationRepository defines storage operations for registrations.
// Create and Delete adjust the event's registration count in the same atomic
// unit as the registration row.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	Delete(ctx context.Context, eventID, userID string) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
}

// AttendeeService defines attendee-facing operations.
type AttendeeService interface {
	// RegisterForEvent registers the user for an upcoming event. Returns
	// (reg, created, err): created is false if the user was already registered.
	RegisterForEvent(ctx context.Context, eventID string, user *User) (*Registration, bool, error)
	CancelRegistration(ctx context.Context, eventID string, user *User) error
	ListMyTickets(ctx context.Context, userID string) ([]*Ticket, error)
}
