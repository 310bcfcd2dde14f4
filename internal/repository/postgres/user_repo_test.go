package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "token_identifier", "name", "email", "image_url",
	"has_completed_onboarding", "city", "state", "country", "interests",
	"free_events_created", "created_at", "updated_at",
}

func TestUserRepository_UpsertByToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mock     func(mock sqlmock.Sqlmock)
		wantID   string
		wantFree int
		wantErr  bool
	}{
		{
			name: "first sign-in creates row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("oauth|abc", "Asha", "asha@example.com", nil, now, now).
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow("u-1", "oauth|abc", "Asha", "asha@example.com", nil,
							false, nil, nil, nil, "{}", 0, now, now))
			},
			wantID:   "u-1",
			wantFree: 0,
		},
		{
			name: "existing row returned unchanged",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("oauth|abc", "Asha", "asha@example.com", nil, now, now).
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow("u-1", "oauth|abc", "Asha", "asha@example.com", nil,
							true, "Pune", "Maharashtra", "India", "{music}", 1, now.Add(-time.Hour), now.Add(-time.Hour)))
			},
			wantID:   "u-1",
			wantFree: 1,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.UpsertByToken(ctx, domain.NewUser("oauth|abc", "Asha", "asha@example.com", nil, now, now))
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, got.ID)
			require.Equal(t, tt.wantFree, got.FreeEventsCreated)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with location", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE token_identifier = \$1`).
			WithArgs("oauth|abc").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("u-1", "oauth|abc", "Asha", "asha@example.com", "https://img.example/a.png",
					true, "Pune", "Maharashtra", "India", "{music,technology}", 1, now, now))

		repo := NewUserRepository(db)
		got, err := repo.GetByToken(ctx, "oauth|abc")
		require.NoError(t, err)
		require.Equal(t, "u-1", got.ID)
		require.NotNil(t, got.Location)
		require.Equal(t, "Pune", got.Location.City)
		require.Equal(t, "Maharashtra", got.Location.State)
		require.Equal(t, []string{"music", "technology"}, got.Interests)
		require.NotNil(t, got.ImageURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE token_identifier = \$1`).
			WithArgs("oauth|missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		got, err := repo.GetByToken(ctx, "oauth|missing")
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrUserNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CompleteOnboarding(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE users`).
			WithArgs("u-1", "Pune", "Maharashtra", "India", `{"music"}`).
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("u-1", "oauth|abc", "Asha", "asha@example.com", nil,
					true, "Pune", "Maharashtra", "India", "{music}", 0, now, now))

		repo := NewUserRepository(db)
		got, err := repo.CompleteOnboarding(ctx, "u-1",
			domain.Location{City: "Pune", State: "Maharashtra", Country: "India"},
			[]string{"music"})
		require.NoError(t, err)
		require.True(t, got.HasCompletedOnboarding)
		require.NotNil(t, got.Location)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE users`).
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		got, err := repo.CompleteOnboarding(ctx, "u-missing",
			domain.Location{City: "Pune", State: "Maharashtra", Country: "India"}, nil)
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrUserNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
