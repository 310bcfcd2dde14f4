package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP status
// codes; repositories translate store-level conditions (sql.ErrNoRows, zero
// rows affected) into them.
var (
	// ErrNotFound is returned when a referenced event or registration does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the acting user is not the owner of the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned for malformed input: non-positive capacity,
	// end date not after start date, unknown category, and similar.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuotaExceeded is returned when a user without a paid entitlement has
	// already used their free event.
	ErrQuotaExceeded = errors.New("free event limit reached")

	// ErrFeatureGated is returned when a customization that requires a paid
	// entitlement is requested without one.
	ErrFeatureGated = errors.New("feature requires a paid plan")

	// ErrUserNotFound is returned when the acting user has no stored record.
	ErrUserNotFound = errors.New("user not found")
)
