package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(repo *fakeEventRepo) {
	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)
	maha := "Maharashtra"
	karna := "Karnataka"

	repo.add(&domain.Event{Title: "Indie Night", Slug: "indie-night-1", Category: "music",
		City: "Pune", State: &maha, StartDate: future, RegistrationCount: 10})
	repo.add(&domain.Event{Title: "Go Meetup", Slug: "go-meetup-1", Category: "technology",
		City: "Bengaluru", State: &karna, StartDate: future.Add(time.Hour), RegistrationCount: 50})
	repo.add(&domain.Event{Title: "Food Walk", Slug: "food-walk-1", Category: "food-drink",
		City: "Pune", State: &maha, StartDate: future.Add(2 * time.Hour), RegistrationCount: 5})
	// Past events never surface in discovery.
	repo.add(&domain.Event{Title: "Yesterday Jam", Slug: "yesterday-jam-1", Category: "music",
		City: "Pune", State: &maha, StartDate: past, RegistrationCount: 999})
}

func TestCatalogService_FeaturedAndPopular(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	t.Run("featured ranks by registration count", func(t *testing.T) {
		events, err := svc.Featured(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 50, events[0].RegistrationCount)
		assert.Equal(t, 10, events[1].RegistrationCount)
	})

	t.Run("featured default limit", func(t *testing.T) {
		events, err := svc.Featured(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("past events excluded", func(t *testing.T) {
		events, err := svc.Popular(ctx, 10)
		require.NoError(t, err)
		for _, e := range events {
			assert.NotEqual(t, "yesterday-jam-1", e.Slug)
		}
	})

	t.Run("limit clamps to cap", func(t *testing.T) {
		events, err := svc.Popular(ctx, 100000)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("repo error surfaces", func(t *testing.T) {
		bad := newFakeEventRepo()
		bad.listErr = errors.New("boom")
		_, err := NewCatalogService(bad, time.Second).Featured(ctx, 3)
		require.Error(t, err)
	})
}

func TestCatalogService_ByLocation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	t.Run("city match is case-insensitive", func(t *testing.T) {
		events, err := svc.ByLocation(ctx, "pune", "", 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.Equal(t, "Pune", e.City)
		}
	})

	t.Run("city wins over state", func(t *testing.T) {
		events, err := svc.ByLocation(ctx, "Bengaluru", "Maharashtra", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Go Meetup", events[0].Title)
	})

	t.Run("state fallback", func(t *testing.T) {
		events, err := svc.ByLocation(ctx, "", "karnataka", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Bengaluru", events[0].City)
	})

	t.Run("neither city nor state returns upcoming set", func(t *testing.T) {
		events, err := svc.ByLocation(ctx, "", "", 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("no match", func(t *testing.T) {
		events, err := svc.ByLocation(ctx, "Chennai", "", 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCatalogService_ByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	events, err := svc.ByCategory(ctx, "music", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Indie Night", events[0].Title)

	_, err = svc.ByCategory(ctx, "kite-flying", 0)
	require.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCatalogService_CategoryCounts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	counts, err := svc.CategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"music": 1, "technology": 1, "food-drink": 1}, counts)
	// Absent categories default to zero at the caller.
	assert.Zero(t, counts["nightlife"])
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	t.Run("matches title substring", func(t *testing.T) {
		events, err := svc.Search(ctx, "indie", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Indie Night", events[0].Title)
	})

	t.Run("short query short-circuits", func(t *testing.T) {
		events, err := svc.Search(ctx, "i", 0)
		require.NoError(t, err)
		assert.Empty(t, events)

		events, err = svc.Search(ctx, "  a  ", 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCatalogService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	seedCatalog(repo)
	svc := NewCatalogService(repo, time.Second)

	event, err := svc.GetBySlug(ctx, "go-meetup-1")
	require.NoError(t, err)
	assert.Equal(t, "Go Meetup", event.Title)

	_, err = svc.GetBySlug(ctx, "missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
