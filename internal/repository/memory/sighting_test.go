package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSighting(lat, lng float64, reportedAt time.Time, ttl time.Duration) *models.Sighting {
	return &models.Sighting{
		ID:           uuid.New(),
		Latitude:     lat,
		Longitude:    lng,
		SightingType: models.SightingSpeedTrap,
		IsActive:     true,
		ReportedAt:   reportedAt,
		ExpiresAt:    reportedAt.Add(ttl),
	}
}

func TestStore_SightingsInRadius_FiltersExpired(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	live := newSighting(39.77, -86.16, now.Add(-10*time.Minute), 30*time.Minute)
	expired := newSighting(39.771, -86.16, now.Add(-40*time.Minute), 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, live))
	require.NoError(t, s.InsertSighting(ctx, expired))

	q := models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 1000, Now: now}
	got, err := s.SightingsInRadius(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)

	// строка истекла, но не выметена: Get хранилища ее все еще видит
	raw, err := s.GetSighting(ctx, expired.ID)
	require.NoError(t, err)
	assert.True(t, raw.IsActive)
}

func TestStore_InsertSighting_Invalid(t *testing.T) {
	s := NewStore()
	err := s.InsertSighting(context.Background(), newSighting(0, 181, time.Now(), time.Minute))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestStore_ConfirmSighting(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	sighting := newSighting(39.77, -86.16, now, 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, sighting))

	got, applied, err := s.ConfirmSighting(ctx, sighting.ID, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, got.ConfirmCount)
	require.NotNil(t, got.LastConfirmedAt)

	// после истечения голос ничего не меняет и не отдает запись
	got, applied, err = s.ConfirmSighting(ctx, sighting.ID, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, got)

	stored, err := s.GetSighting(ctx, sighting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ConfirmCount)

	_, _, err = s.ConfirmSighting(ctx, uuid.New(), now)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_MarkSightingNotThere_Deactivates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	sighting := newSighting(39.77, -86.16, now, 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, sighting))

	_, _, err := s.ConfirmSighting(ctx, sighting.ID, now)
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		got, applied, err := s.MarkSightingNotThere(ctx, sighting.ID, now)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.True(t, got.IsActive, "vote %d", i)
	}
	got, applied, err := s.MarkSightingNotThere(ctx, sighting.ID, now)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.False(t, got.IsActive)
	assert.Equal(t, 3, got.NotThereCount)

	// неактивное наблюдение не принимает голоса
	got, applied, err = s.MarkSightingNotThere(ctx, sighting.ID, now)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, got)

	stored, err := s.GetSighting(ctx, sighting.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.NotThereCount)

	inRadius, err := s.SightingsInRadius(ctx, models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 100, Now: now})
	require.NoError(t, err)
	assert.Empty(t, inRadius)
}

func TestStore_MarkSightingNotThere_ConfirmsOutweigh(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	sighting := newSighting(39.77, -86.16, now, 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, sighting))

	for i := 0; i < 3; i++ {
		_, _, err := s.ConfirmSighting(ctx, sighting.ID, now)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, _, err := s.MarkSightingNotThere(ctx, sighting.ID, now)
		require.NoError(t, err)
	}
	got, err := s.GetSighting(ctx, sighting.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	got, _, err = s.MarkSightingNotThere(ctx, sighting.ID, now)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestStore_ConcurrentVotes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()
	sighting := newSighting(39.77, -86.16, now, 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, sighting))

	const voters = 50
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.ConfirmSighting(ctx, sighting.ID, now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.GetSighting(ctx, sighting.ID)
	require.NoError(t, err)
	assert.Equal(t, voters, got.ConfirmCount)
}

func TestStore_DeactivateExpired_Idempotent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	expired := newSighting(39.77, -86.16, now.Add(-time.Hour), 30*time.Minute)
	live := newSighting(39.77, -86.16, now, 30*time.Minute)
	require.NoError(t, s.InsertSighting(ctx, expired))
	require.NoError(t, s.InsertSighting(ctx, live))

	n, err := s.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := s.GetSighting(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	got, err = s.GetSighting(ctx, live.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}
