package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventboard/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration and increments the event's registration
// count in one transaction, so the denormalized counter cannot drift from the
// rows it counts.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO registrations (event_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, reg.EventID, reg.UserID, reg.CreatedAt, reg.UpdatedAt).Scan(&reg.ID); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	result, err := tx.ExecContext(ctx, `
		UPDATE events SET registration_count = registration_count + 1, updated_at = NOW()
		WHERE id = $1
	`, reg.EventID)
	if err != nil {
		return fmt.Errorf("increment registration count: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

// Delete removes the registration and decrements the event's registration
// count (floored at zero) in one transaction.
func (r *registrationRepository) Delete(ctx context.Context, eventID, userID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE events SET registration_count = GREATEST(registration_count - 1, 0), updated_at = NOW()
		WHERE id = $1
	`, eventID); err != nil {
		return fmt.Errorf("decrement registration count: %w", err)
	}
	return tx.Commit()
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, created_at, updated_at
		FROM registrations
		WHERE event_id = $1 AND user_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, event_id, user_id, created_at, updated_at
		FROM registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
