package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

// eventColumns is the column list shared by every event SELECT.
const eventColumns = `id, title, slug, description, category, tags,
		start_date, end_date, timezone, location_type, venue, address,
		city, state, country, capacity, ticket_type, ticket_price,
		cover_image, theme_color, organizer_id, organizer_name,
		registration_count, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var venue, address, state, coverImage sql.NullString
	var ticketPrice sql.NullFloat64
	err := row.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Category, pq.Array(&e.Tags),
		&e.StartDate, &e.EndDate, &e.Timezone, &e.LocationType, &venue, &address,
		&e.City, &state, &e.Country, &e.Capacity, &e.TicketType, &ticketPrice,
		&coverImage, &e.ThemeColor, &e.OrganizerID, &e.OrganizerName,
		&e.RegistrationCount, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if venue.Valid {
		e.Venue = &venue.String
	}
	if address.Valid {
		e.Address = &address.String
	}
	if state.Valid {
		e.State = &state.String
	}
	if ticketPrice.Valid {
		e.TicketPrice = &ticketPrice.Float64
	}
	if coverImage.Valid {
		e.CoverImage = &coverImage.String
	}
	return e, nil
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateWithQuota inserts the event and increments the organizer's free-event
// counter in one transaction. The counter update is conditional, so the quota
// check and the increment are a single atomic statement: two concurrent
// creates racing on the last free slot cannot both pass.
func (r *eventRepository) CreateWithQuota(ctx context.Context, e *domain.Event, freeLimit int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE users
		SET free_events_created = free_events_created + 1, updated_at = NOW()
		WHERE id = $1 AND ($2 < 0 OR free_events_created < $2)
	`, e.OrganizerID, freeLimit)
	if err != nil {
		return fmt.Errorf("increment free events: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrQuotaExceeded
	}

	query := `
		INSERT INTO events (title, slug, description, category, tags,
			start_date, end_date, timezone, location_type, venue, address,
			city, state, country, capacity, ticket_type, ticket_price,
			cover_image, theme_color, organizer_id, organizer_name,
			registration_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Category, pq.Array(e.Tags),
		e.StartDate, e.EndDate, e.Timezone, e.LocationType, e.Venue, e.Address,
		e.City, e.State, e.Country, e.Capacity, e.TicketType, e.TicketPrice,
		e.CoverImage, e.ThemeColor, e.OrganizerID, e.OrganizerName,
		e.RegistrationCount, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return tx.Commit()
}

// DeleteCascade removes the event's registrations, the event row, and
// decrements the organizer's free-event counter (floored at zero) in one
// transaction.
func (r *eventRepository) DeleteCascade(ctx context.Context, eventID, organizerID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete registrations: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE users
		SET free_events_created = GREATEST(free_events_created - 1, 0), updated_at = NOW()
		WHERE id = $1
	`, organizerID); err != nil {
		return fmt.Errorf("decrement free events: %w", err)
	}
	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC`
	return r.queryEvents(ctx, query, organizerID)
}

func (r *eventRepository) ListUpcomingByPopularity(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= NOW()
		ORDER BY registration_count DESC, start_date ASC
		LIMIT $1`
	return r.queryEvents(ctx, query, limit)
}

func (r *eventRepository) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= NOW()
		ORDER BY start_date ASC
		LIMIT $1`
	return r.queryEvents(ctx, query, limit)
}

func (r *eventRepository) ListUpcomingByCity(ctx context.Context, city string, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= NOW() AND LOWER(city) = LOWER($1)
		ORDER BY start_date ASC
		LIMIT $2`
	return r.queryEvents(ctx, query, city, limit)
}

func (r *eventRepository) ListUpcomingByState(ctx context.Context, state string, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= NOW() AND LOWER(state) = LOWER($1)
		ORDER BY start_date ASC
		LIMIT $2`
	return r.queryEvents(ctx, query, state, limit)
}

func (r *eventRepository) ListUpcomingByCategory(ctx context.Context, category string, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE category = $1 AND start_date >= NOW()
		ORDER BY start_date ASC
		LIMIT $2`
	return r.queryEvents(ctx, query, category, limit)
}

func (r *eventRepository) CountUpcomingByCategory(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT category, COUNT(*)
		FROM events
		WHERE start_date >= NOW()
		GROUP BY category
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func (r *eventRepository) SearchUpcoming(ctx context.Context, query string, limit int) ([]*domain.Event, error) {
	q := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= NOW() AND title ILIKE '%' || $1 || '%'
		ORDER BY start_date ASC
		LIMIT $2`
	return r.queryEvents(ctx, q, query, limit)
}
