package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/service"
	"github.com/raayraay69/blue-ledger/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "20000.aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
const testTokenHash = "hash-of-token"

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type ledgerMocks struct {
	store   *mocks.MockIncidentStore
	tx      *mocks.MockLedgerTx
	cache   *mocks.MockIncidentCache
	tokens  *mocks.MockTokenVerifier
	limiter *mocks.MockRateLimiter
}

// newTestLedger создает журнал с моками зависимостей
func newTestLedger(t *testing.T) (*service.Ledger, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		store:   mocks.NewMockIncidentStore(ctrl),
		tx:      mocks.NewMockLedgerTx(ctrl),
		cache:   mocks.NewMockIncidentCache(ctrl),
		tokens:  mocks.NewMockTokenVerifier(ctrl),
		limiter: mocks.NewMockRateLimiter(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	ledger := service.NewLedger(m.store, m.cache, m.tokens, m.limiter, logger)
	ledger.SetClock(func() time.Time { return testNow })
	return ledger, m
}

func (m ledgerMocks) expectAdmitted() {
	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassIncidentInsert).Return(nil)
}

// expectTx выполняет переданную функцию на моке транзакции
func (m ledgerMocks) expectTx() {
	m.store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, service.LedgerTx) error) error {
			return fn(ctx, m.tx)
		})
}

func validReport() models.IncidentReport {
	rating := 5
	return models.IncidentReport{
		Latitude:      39.7684,
		Longitude:     -86.1581,
		City:          "Indianapolis",
		State:         "IN",
		BadgeNumber:   " 1234 ",
		OfficerName:   "J. Doe",
		Department:    "IMPD",
		IncidentType:  models.IncidentTrafficStop,
		Tags:          []string{"Professional", "professional", " calm "},
		Confidence:    0.9,
		OfficerRating: &rating,
		DeviceToken:   testToken,
	}
}

func TestLedgerInsert_Success(t *testing.T) {
	// Подготовка
	ledger, m := newTestLedger(t)
	ctx := context.Background()
	report := validReport()

	// Ожидания
	m.expectAdmitted()
	m.expectTx()
	var stored *models.Incident
	m.tx.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			stored = incident
			return nil
		})
	m.tx.EXPECT().IncrementDepartmentReports(gomock.Any(), "IMPD").Return(nil)
	var delta models.OfficerDelta
	m.tx.EXPECT().ApplyOfficerDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.OfficerDelta) error {
			delta = d
			return nil
		})

	// Действие
	incident, err := ledger.Insert(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Same(t, stored, incident)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.Equal(t, "1234", incident.BadgeNumber)
	assert.Equal(t, []string{"professional", "calm"}, incident.Tags)
	assert.Equal(t, models.OutcomeNone, incident.Outcome)
	assert.Equal(t, models.VerificationUnverified, incident.VerificationStatus)
	assert.Equal(t, testTokenHash, incident.DeviceTokenHash)
	assert.Equal(t, testNow, incident.CreatedAt)
	assert.Equal(t, testNow, incident.IncidentAt)

	assert.Equal(t, "1234", delta.BadgeNumber)
	assert.Equal(t, 1, delta.Positive)
	assert.Equal(t, 0, delta.Negative)
	assert.Equal(t, 5, delta.Rating)
	assert.Equal(t, testNow, delta.SeenAt)
}

func TestLedgerInsert_WithoutOfficerSkipsAggregate(t *testing.T) {
	ledger, m := newTestLedger(t)
	report := validReport()
	report.BadgeNumber = ""

	m.expectAdmitted()
	m.expectTx()
	m.tx.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().IncrementDepartmentReports(gomock.Any(), "IMPD").Return(nil)
	m.tx.EXPECT().ApplyOfficerDelta(gomock.Any(), gomock.Any()).Times(0)

	_, err := ledger.Insert(context.Background(), report)
	require.NoError(t, err)
}

func TestLedgerInsert_RatingClassification(t *testing.T) {
	testCases := []struct {
		rating   int
		positive int
		negative int
	}{
		{rating: 1, negative: 1},
		{rating: 2, negative: 1},
		{rating: 3},
		{rating: 4, positive: 1},
		{rating: 5, positive: 1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("rating %d", tc.rating), func(t *testing.T) {
			ledger, m := newTestLedger(t)
			report := validReport()
			report.OfficerRating = &tc.rating

			m.expectAdmitted()
			m.expectTx()
			m.tx.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).Return(nil)
			m.tx.EXPECT().IncrementDepartmentReports(gomock.Any(), gomock.Any()).Return(nil)
			m.tx.EXPECT().ApplyOfficerDelta(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, d models.OfficerDelta) error {
					assert.Equal(t, tc.positive, d.Positive)
					assert.Equal(t, tc.negative, d.Negative)
					return nil
				})

			_, err := ledger.Insert(context.Background(), report)
			require.NoError(t, err)
		})
	}
}

func TestLedgerInsert_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *models.IncidentReport)
		field  string
	}{
		{name: "latitude out of range", mutate: func(r *models.IncidentReport) { r.Latitude = 91 }, field: "latitude"},
		{name: "longitude out of range", mutate: func(r *models.IncidentReport) { r.Longitude = -181 }, field: "longitude"},
		{name: "unknown type", mutate: func(r *models.IncidentReport) { r.IncidentType = "riot" }, field: "incident_type"},
		{name: "confidence above one", mutate: func(r *models.IncidentReport) { r.Confidence = 1.5 }, field: "confidence"},
		{name: "rating out of range", mutate: func(r *models.IncidentReport) { v := 6; r.OfficerRating = &v }, field: "officer_rating"},
		{name: "missing token", mutate: func(r *models.IncidentReport) { r.DeviceToken = "" }, field: "device_token"},
		{name: "future incident", mutate: func(r *models.IncidentReport) { r.IncidentAt = testNow.Add(time.Hour) }, field: "incident_at"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Ни токен, ни ограничитель, ни хранилище не вызываются
			ledger, _ := newTestLedger(t)
			report := validReport()
			tc.mutate(&report)

			incident, err := ledger.Insert(context.Background(), report)

			require.Error(t, err)
			assert.Nil(t, incident)
			assert.ErrorIs(t, err, models.ErrValidation)
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestLedgerInsert_RateLimited(t *testing.T) {
	ledger, m := newTestLedger(t)

	m.tokens.EXPECT().Verify(testToken).Return(testTokenHash, nil)
	m.limiter.EXPECT().Admit(gomock.Any(), testTokenHash, models.ClassIncidentInsert).
		Return(fmt.Errorf("%w: incident_insert", models.ErrRateLimitExceeded))
	m.store.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Times(0)

	_, err := ledger.Insert(context.Background(), validReport())
	assert.ErrorIs(t, err, models.ErrRateLimitExceeded)
}

func TestLedgerInsert_InvalidToken(t *testing.T) {
	ledger, m := newTestLedger(t)

	m.tokens.EXPECT().Verify(testToken).Return("", models.NewValidationError("device_token", "unknown epoch"))

	_, err := ledger.Insert(context.Background(), validReport())
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLedgerInsert_AggregateFailureFailsInsert(t *testing.T) {
	ledger, m := newTestLedger(t)
	dbErr := errors.New("deadlock detected")

	m.expectAdmitted()
	m.expectTx()
	m.tx.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().IncrementDepartmentReports(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().ApplyOfficerDelta(gomock.Any(), gomock.Any()).Return(dbErr)

	incident, err := ledger.Insert(context.Background(), validReport())
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "service: could not insert incident")
}

func TestLedgerGet_FromCache(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id}

	m.cache.EXPECT().GetIncident(ctx, id).Return(expected, nil)
	m.store.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	incident, err := ledger.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestLedgerGet_FromStoreFillsCache(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id}

	// 1. Промах кеша
	m.cache.EXPECT().GetIncident(ctx, id).Return(nil, nil)
	// 2. Попадание в хранилище
	m.store.EXPECT().GetIncident(ctx, id).Return(expected, nil)
	// 3. Запись в кеш
	m.cache.EXPECT().SetIncident(ctx, expected).Return(nil)

	incident, err := ledger.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestLedgerGet_CacheErrorFallsBackToStore(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id}

	m.cache.EXPECT().GetIncident(ctx, id).Return(nil, errors.New("connection refused"))
	m.store.EXPECT().GetIncident(ctx, id).Return(expected, nil)
	m.cache.EXPECT().SetIncident(ctx, expected).Return(errors.New("connection refused"))

	incident, err := ledger.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestLedgerGet_NotFound(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()
	id := uuid.New()

	m.cache.EXPECT().GetIncident(ctx, id).Return(nil, nil)
	m.store.EXPECT().GetIncident(ctx, id).Return(nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound))

	_, err := ledger.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLedgerQueryRegion_Normalizes(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()

	m.store.EXPECT().IncidentsInRadius(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.RadiusQuery) ([]*models.Incident, error) {
			assert.Equal(t, models.OrderRecent, q.Order)
			assert.Equal(t, 100, q.Limit)
			return []*models.Incident{}, nil
		})

	_, err := ledger.QueryRegion(ctx, models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 1000})
	require.NoError(t, err)
}

func TestLedgerQueryRegion_Rejects(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	testCases := []models.RadiusQuery{
		{Latitude: 100, Longitude: 0, RadiusMeters: 10},
		{Latitude: 0, Longitude: 0, RadiusMeters: 0},
		{Latitude: 0, Longitude: 0, RadiusMeters: service.MaxRadiusMeters + 1},
		{Latitude: 0, Longitude: 0, RadiusMeters: 10, Order: "random"},
	}
	for _, q := range testCases {
		_, err := ledger.QueryRegion(ctx, q)
		assert.ErrorIs(t, err, models.ErrValidation, "query %+v", q)
	}
}

func TestLedgerQueryByBadge(t *testing.T) {
	ledger, m := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.QueryByBadge(ctx, "  ", 10)
	assert.ErrorIs(t, err, models.ErrValidation)

	m.store.EXPECT().IncidentsByBadge(ctx, "1234", 500).Return([]*models.Incident{}, nil)
	_, err = ledger.QueryByBadge(ctx, "1234", 10000)
	require.NoError(t, err)
}
