package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/notify"
	notify_mocks "github.com/raayraay69/blue-ledger/internal/notify/mocks"
	"github.com/raayraay69/blue-ledger/internal/service"
	"github.com/raayraay69/blue-ledger/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sightingMocks struct {
	store     *mocks.MockSightingStore
	tokens    *mocks.MockTokenVerifier
	limiter   *mocks.MockRateLimiter
	publisher *notify_mocks.MockPublisher
}

func newTestSightings(t *testing.T) (*service.Sightings, sightingMocks) {
	ctrl := gomock.NewController(t)
	m := sightingMocks{
		store:     mocks.NewMockSightingStore(ctrl),
		tokens:    mocks.NewMockTokenVerifier(ctrl),
		limiter:   mocks.NewMockRateLimiter(ctrl),
		publisher: notify_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	sightings := service.NewSightings(m.store, m.tokens, m.limiter, m.publisher, 0, logger)
	sightings.SetClock(func() time.Time { return testNow })
	return sightings, m
}

func validSightingReport() models.SightingReport {
	return models.SightingReport{
		Latitude:     39.7684,
		Longitude:    -86.1581,
		SightingType: models.SightingSpeedTrap,
		Direction:    "NE",
		VehicleCount: 1,
		DeviceToken:  testToken,
	}
}

func TestSightingsInsert_Success(t *testing.T) {
	sightings, m := newTestSightings(t)
	ctx := context.Background()

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassSightingInsert).Return(nil)
	m.store.EXPECT().InsertSighting(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.SightingEvent) error {
			assert.Equal(t, "79:-173", event.Tile)
			return nil
		})

	sighting, err := sightings.Insert(ctx, validSightingReport())

	require.NoError(t, err)
	assert.True(t, sighting.IsActive)
	assert.Equal(t, 0, sighting.ConfirmCount)
	assert.Equal(t, 0, sighting.NotThereCount)
	assert.Equal(t, testNow, sighting.ReportedAt)
	assert.Equal(t, testNow.Add(models.DefaultSightingTTL), sighting.ExpiresAt)
	assert.Equal(t, testTokenHash, sighting.DeviceTokenHash)
}

func TestSightingsInsert_PublishFailureIsNotFatal(t *testing.T) {
	sightings, m := newTestSightings(t)

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassSightingInsert).Return(nil)
	m.store.EXPECT().InsertSighting(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	sighting, err := sightings.Insert(context.Background(), validSightingReport())
	require.NoError(t, err)
	assert.NotNil(t, sighting)
}

func TestSightingsInsert_Validation(t *testing.T) {
	sightings, _ := newTestSightings(t)
	report := validSightingReport()
	report.Direction = "UP"

	_, err := sightings.Insert(context.Background(), report)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSightingsInsert_DirectionCaseInsensitive(t *testing.T) {
	sightings, m := newTestSightings(t)
	report := validSightingReport()
	report.Direction = " sw "

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassSightingInsert).Return(nil)
	m.store.EXPECT().InsertSighting(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Sighting) error {
			assert.Equal(t, "SW", s.Direction)
			return nil
		})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	sighting, err := sightings.Insert(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, "SW", sighting.Direction)
}

func TestSightingsInsert_StoreFailure(t *testing.T) {
	sightings, m := newTestSightings(t)

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassSightingInsert).Return(nil)
	m.store.EXPECT().InsertSighting(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := sightings.Insert(context.Background(), validSightingReport())
	assert.Error(t, err)
}

func TestSightingsGet_HidesExpired(t *testing.T) {
	sightings, m := newTestSightings(t)
	ctx := context.Background()
	id := uuid.New()

	m.store.EXPECT().GetSighting(ctx, id).Return(&models.Sighting{
		ID:        id,
		IsActive:  true,
		ExpiresAt: testNow.Add(-time.Second),
	}, nil)

	_, err := sightings.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSightingsGet_HidesInactive(t *testing.T) {
	sightings, m := newTestSightings(t)
	ctx := context.Background()
	id := uuid.New()

	m.store.EXPECT().GetSighting(ctx, id).Return(&models.Sighting{
		ID:        id,
		IsActive:  false,
		ExpiresAt: testNow.Add(time.Minute),
	}, nil)

	_, err := sightings.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSightingsQueryRadius_PassesNow(t *testing.T) {
	sightings, m := newTestSightings(t)
	ctx := context.Background()

	m.store.EXPECT().SightingsInRadius(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.RadiusQuery) ([]*models.Sighting, error) {
			assert.Equal(t, testNow, q.Now)
			return nil, nil
		})

	_, err := sightings.QueryRadius(ctx, models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 500})
	require.NoError(t, err)
}

func TestSightingsVote_NoOpIsSuccess(t *testing.T) {
	sightings, m := newTestSightings(t)
	ctx := context.Background()
	id := uuid.New()

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassVote).Return(nil)
	m.store.EXPECT().MarkSightingNotThere(gomock.Any(), id, testNow).Return(nil, false, nil)

	result, err := sightings.MarkNotThere(ctx, id, testToken)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Nil(t, result.Sighting)
}

func TestSightingsVote_ResultHidesInvisibleRecords(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name     string
		stored   *models.Sighting
		applied  bool
		expected bool
	}{
		{
			name:     "active after confirm",
			stored:   &models.Sighting{ID: id, IsActive: true, ConfirmCount: 1, ExpiresAt: testNow.Add(time.Minute)},
			applied:  true,
			expected: true,
		},
		{
			name:    "inactive after vote",
			stored:  &models.Sighting{ID: id, IsActive: false, NotThereCount: 3, ExpiresAt: testNow.Add(time.Minute)},
			applied: true,
		},
		{
			name:   "expired record returned by store",
			stored: &models.Sighting{ID: id, IsActive: true, ExpiresAt: testNow.Add(-time.Minute)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sightings, m := newTestSightings(t)

			m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
			m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassVote).Return(nil)
			m.store.EXPECT().ConfirmSighting(gomock.Any(), id, testNow).Return(tc.stored, tc.applied, nil)

			result, err := sightings.Confirm(context.Background(), id, testToken)
			require.NoError(t, err)
			assert.Equal(t, tc.applied, result.Applied)
			if tc.expected {
				assert.Equal(t, tc.stored, result.Sighting)
			} else {
				assert.Nil(t, result.Sighting)
			}
		})
	}
}

func TestSightingsVote_RateLimited(t *testing.T) {
	sightings, m := newTestSightings(t)

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassVote).Return(models.ErrRateLimitExceeded)
	m.store.EXPECT().ConfirmSighting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := sightings.Confirm(context.Background(), uuid.New(), testToken)
	assert.ErrorIs(t, err, models.ErrRateLimitExceeded)
}

func TestSightingsVote_NotFound(t *testing.T) {
	sightings, m := newTestSightings(t)
	id := uuid.New()

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassVote).Return(nil)
	m.store.EXPECT().ConfirmSighting(gomock.Any(), id, testNow).Return(nil, false, models.ErrNotFound)

	_, err := sightings.Confirm(context.Background(), id, testToken)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
