package domain

import "time"

// RegistrationMessage is the payload published to the notification queue when
// a new registration is created.
type RegistrationMessage struct {
	RegistrationID string    `json:"registration_id"`
	EventID        string    `json:"event_id"`
	EventTitle     string    `json:"event_title"`
	EventSlug      string    `json:"event_slug"`
	EventCity      string    `json:"event_city"`
	StartDate      time.Time `json:"start_date"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
}

// RegistrationPublisher publishes registration notifications for asynchronous
// delivery (confirmation emails). Implementations must not block on consumer
// availability beyond the broker round-trip.
type RegistrationPublisher interface {
	PublishRegistration(msg RegistrationMessage) error
}
