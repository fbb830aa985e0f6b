package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncident(lat, lng float64, badge, department string, createdAt time.Time) *models.Incident {
	return &models.Incident{
		ID:           uuid.New(),
		Latitude:     lat,
		Longitude:    lng,
		BadgeNumber:  badge,
		Department:   department,
		IncidentType: models.IncidentTrafficStop,
		Outcome:      models.OutcomeNone,
		IncidentAt:   createdAt,
		CreatedAt:    createdAt,
	}
}

func insert(t *testing.T, s *Store, inc *models.Incident, delta *models.OfficerDelta) {
	t.Helper()
	err := s.WithinTx(context.Background(), func(ctx context.Context, tx service.LedgerTx) error {
		if err := tx.InsertIncident(ctx, inc); err != nil {
			return err
		}
		if inc.Department != "" {
			if err := tx.IncrementDepartmentReports(ctx, inc.Department); err != nil {
				return err
			}
		}
		if delta != nil {
			return tx.ApplyOfficerDelta(ctx, *delta)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinTx_RollbackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	inc := newIncident(39.77, -86.16, "1234", "IMPD", time.Now())
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context, tx service.LedgerTx) error {
		require.NoError(t, tx.InsertIncident(ctx, inc))
		require.NoError(t, tx.ApplyOfficerDelta(ctx, models.OfficerDelta{BadgeNumber: "1234", Department: "IMPD"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.GetIncident(ctx, inc.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.GetOfficer(ctx, "1234")
	assert.ErrorIs(t, err, models.ErrNotFound)
	hits, err := s.IncidentsInRadius(ctx, models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 1000})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_InsertIncident_InvalidCoordinates(t *testing.T) {
	s := NewStore()
	inc := newIncident(91, 0, "", "", time.Now())

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx service.LedgerTx) error {
		return tx.InsertIncident(ctx, inc)
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestStore_DuplicateIncidentIsImmutable(t *testing.T) {
	s := NewStore()
	inc := newIncident(39.77, -86.16, "", "", time.Now())
	insert(t, s, inc, nil)

	err := s.WithinTx(context.Background(), func(ctx context.Context, tx service.LedgerTx) error {
		return tx.InsertIncident(ctx, inc)
	})
	assert.ErrorIs(t, err, models.ErrImmutableRecord)
}

func TestStore_GetIncident_ReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	inc := newIncident(39.77, -86.16, "", "", time.Now())
	inc.Tags = []string{"rude"}
	insert(t, s, inc, nil)

	got, err := s.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	got.Tags[0] = "changed"
	got.Description = "changed"

	again, err := s.GetIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"rude"}, again.Tags)
	assert.Empty(t, again.Description)
}

func TestStore_IncidentsInRadius_Order(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	near := newIncident(39.7700, -86.1600, "", "", base)
	mid := newIncident(39.7750, -86.1600, "", "", base.Add(2*time.Hour))
	far := newIncident(39.7800, -86.1600, "", "", base.Add(time.Hour))
	outside := newIncident(40.5, -86.16, "", "", base.Add(3*time.Hour))
	for _, inc := range []*models.Incident{near, mid, far, outside} {
		insert(t, s, inc, nil)
	}

	q := models.RadiusQuery{Latitude: 39.77, Longitude: -86.16, RadiusMeters: 2000, Order: models.OrderNearest}
	got, err := s.IncidentsInRadius(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{near.ID, mid.ID, far.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})

	q.Order = models.OrderRecent
	got, err = s.IncidentsInRadius(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{mid.ID, far.ID, near.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})

	q.Limit = 1
	got, err = s.IncidentsInRadius(ctx, q)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_IncidentsByBadge(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	first := newIncident(39.77, -86.16, "77", "IMPD", base)
	second := newIncident(39.78, -86.16, "77", "IMPD", base.Add(time.Minute))
	other := newIncident(39.78, -86.16, "88", "IMPD", base)
	for _, inc := range []*models.Incident{first, second, other} {
		insert(t, s, inc, nil)
	}

	got, err := s.IncidentsByBadge(ctx, "77", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	got, err = s.IncidentsByBadge(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Departments(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	dep := &models.Department{Name: "IMPD", City: "Indianapolis", State: "IN"}
	require.NoError(t, s.UpsertDepartment(ctx, dep))
	require.NotEqual(t, uuid.Nil, dep.ID)

	insert(t, s, newIncident(39.77, -86.16, "", "impd", time.Now()), nil)

	update := &models.Department{Name: "IMPD", Phone: "317-555-0100"}
	require.NoError(t, s.UpsertDepartment(ctx, update))
	assert.Equal(t, dep.ID, update.ID)

	got, err := s.GetDepartment(ctx, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ReportsCount)
	assert.Equal(t, "317-555-0100", got.Phone)

	// неизвестный департамент не создается из инцидента
	insert(t, s, newIncident(39.77, -86.16, "", "Unknown PD", time.Now()), nil)
	list, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.GetDepartment(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_ConcurrentOfficerAggregate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	const writers = 16
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				inc := newIncident(39.77, -86.16, "1234", "IMPD", time.Now())
				delta := models.OfficerDelta{
					BadgeNumber: "1234",
					Department:  "IMPD",
					Tags:        []string{fmt.Sprintf("tag%d", w%2)},
					Positive:    1,
					Rating:      4,
					SeenAt:      inc.CreatedAt,
				}
				err := s.WithinTx(ctx, func(ctx context.Context, tx service.LedgerTx) error {
					if err := tx.InsertIncident(ctx, inc); err != nil {
						return err
					}
					return tx.ApplyOfficerDelta(ctx, delta)
				})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	officer, err := s.GetOfficer(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, officer.ReportsCount)
	assert.Equal(t, s.CountIncidentsByBadge("1234"), officer.ReportsCount)
	assert.Equal(t, writers*perWriter, officer.PositiveEncounters)
	assert.Equal(t, writers*perWriter/2, officer.TagCounts["tag0"])
	assert.Equal(t, writers*perWriter/2, officer.TagCounts["tag1"])
	assert.InDelta(t, 4.0, officer.AverageRating, 1e-9)
}

func TestStore_OfficerDepartmentFollowsLatestReport(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	t0 := time.Now().UTC()

	first := newIncident(39.77, -86.16, "555", "IMPD", t0)
	insert(t, s, first, &models.OfficerDelta{BadgeNumber: "555", Department: "IMPD", SeenAt: t0})
	second := newIncident(39.77, -86.16, "555", "Carmel PD", t0.Add(time.Minute))
	insert(t, s, second, &models.OfficerDelta{BadgeNumber: "555", Department: "Carmel PD", SeenAt: t0.Add(time.Minute)})

	officer, err := s.GetOfficer(ctx, "555")
	require.NoError(t, err)
	assert.Equal(t, "Carmel PD", officer.Department)
	assert.Equal(t, 2, officer.ReportsCount)
}
