package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

const userColumns = `id, token_identifier, name, email, image_url,
		has_completed_onboarding, city, state, country, interests,
		free_events_created, created_at, updated_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{
		DB: db,
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var imageURL, city, state, country sql.NullString
	err := row.Scan(
		&u.ID, &u.TokenIdentifier, &u.Name, &u.Email, &imageURL,
		&u.HasCompletedOnboarding, &city, &state, &country, pq.Array(&u.Interests),
		&u.FreeEventsCreated, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		u.ImageURL = &imageURL.String
	}
	if city.Valid && country.Valid {
		loc := &domain.Location{City: city.String, Country: country.String}
		if state.Valid {
			loc.State = state.String
		}
		u.Location = loc
	}
	return u, nil
}

// UpsertByToken inserts the user on first sign-in. For an existing token
// identifier the ON CONFLICT clause is a no-op update so RETURNING yields the
// stored row untouched.
func (r *userRepository) UpsertByToken(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (token_identifier, name, email, image_url,
			has_completed_onboarding, free_events_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, 0, $5, $6)
		ON CONFLICT (token_identifier) DO UPDATE SET token_identifier = EXCLUDED.token_identifier
		RETURNING ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, query,
		user.TokenIdentifier, user.Name, user.Email, user.ImageURL,
		user.CreatedAt, user.UpdatedAt,
	))
}

func (r *userRepository) GetByToken(ctx context.Context, tokenIdentifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token_identifier = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, tokenIdentifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) CompleteOnboarding(ctx context.Context, userID string, location domain.Location, interests []string) (*domain.User, error) {
	var state any
	if location.State != "" {
		state = location.State
	}
	query := `
		UPDATE users
		SET city = $2, state = $3, country = $4, interests = $5,
			has_completed_onboarding = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	u, err := scanUser(r.DB.QueryRowContext(ctx, query,
		userID, location.City, state, location.Country, pq.Array(interests),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
