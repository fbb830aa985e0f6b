package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/geo"
	"github.com/raayraay69/blue-ledger/internal/models"
)

// InsertSighting сохраняет наблюдение и индексирует его
func (s *Store) InsertSighting(_ context.Context, sighting *models.Sighting) error {
	if !(geo.Point{Lat: sighting.Latitude, Lng: sighting.Longitude}).Valid() {
		return models.NewValidationError("location", "coordinates out of range")
	}
	s.smu.Lock()
	defer s.smu.Unlock()
	if _, exists := s.sightings[sighting.ID]; exists {
		return fmt.Errorf("sighting %s already exists", sighting.ID)
	}
	s.sightings[sighting.ID] = cloneSighting(sighting)
	s.sightingIdx.Insert(sighting.ID, geo.Point{Lat: sighting.Latitude, Lng: sighting.Longitude})
	if sighting.IsActive {
		s.expiry.add(sighting.ID, sighting.ExpiresAt)
	}
	return nil
}

// GetSighting возвращает наблюдение без фильтра активности
func (s *Store) GetSighting(_ context.Context, id uuid.UUID) (*models.Sighting, error) {
	s.smu.RLock()
	defer s.smu.RUnlock()
	sighting, ok := s.sightings[id]
	if !ok {
		return nil, fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
	}
	return cloneSighting(sighting), nil
}

// SightingsInRadius возвращает активные и не истекшие к q.Now наблюдения
func (s *Store) SightingsInRadius(_ context.Context, q models.RadiusQuery) ([]*models.Sighting, error) {
	hits := s.sightingIdx.Within(geo.Point{Lat: q.Latitude, Lng: q.Longitude}, q.RadiusMeters)

	s.smu.RLock()
	out := make([]*models.Sighting, 0, len(hits))
	for _, h := range hits {
		if sighting, ok := s.sightings[h.ID]; ok && sighting.Visible(q.Now) {
			out = append(out, cloneSighting(sighting))
		}
	}
	s.smu.RUnlock()

	if q.Order == models.OrderRecent {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	}
	return truncate(out, q.Limit), nil
}

// ConfirmSighting атомарно увеличивает confirm_count
func (s *Store) ConfirmSighting(_ context.Context, id uuid.UUID, now time.Time) (*models.Sighting, bool, error) {
	s.smu.Lock()
	defer s.smu.Unlock()
	sighting, ok := s.sightings[id]
	if !ok {
		return nil, false, fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
	}
	if !sighting.Visible(now) {
		return nil, false, nil
	}
	sighting.ConfirmCount++
	confirmedAt := now.UTC()
	sighting.LastConfirmedAt = &confirmedAt
	return cloneSighting(sighting), true, nil
}

// MarkSightingNotThere атомарно увеличивает not_there_count и применяет правило деактивации
// к значению после инкремента
func (s *Store) MarkSightingNotThere(_ context.Context, id uuid.UUID, now time.Time) (*models.Sighting, bool, error) {
	s.smu.Lock()
	defer s.smu.Unlock()
	sighting, ok := s.sightings[id]
	if !ok {
		return nil, false, fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
	}
	if !sighting.Visible(now) {
		return nil, false, nil
	}
	sighting.NotThereCount++
	if models.ShouldDeactivate(sighting.NotThereCount, sighting.ConfirmCount) {
		sighting.IsActive = false
		s.sightingIdx.Remove(id)
	}
	return cloneSighting(sighting), true, nil
}

// DeactivateExpired деактивирует активные наблюдения с expires_at < now.
// Строки остаются для истории, из пространственного индекса они удаляются.
// Проход затрагивает только истекшие записи из очереди по сроку, а не все наблюдения.
func (s *Store) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	s.smu.Lock()
	defer s.smu.Unlock()
	var n int64
	for _, id := range s.expiry.popExpired(now) {
		sighting, ok := s.sightings[id]
		if !ok || !sighting.IsActive {
			continue
		}
		sighting.IsActive = false
		s.sightingIdx.Remove(id)
		n++
	}
	return n, nil
}

// PendingExpiry - число записей в очереди истечения, для тестов
func (s *Store) PendingExpiry() int {
	s.smu.RLock()
	defer s.smu.RUnlock()
	return s.expiry.Len()
}

func cloneSighting(s *models.Sighting) *models.Sighting {
	cp := *s
	if s.LastConfirmedAt != nil {
		t := *s.LastConfirmedAt
		cp.LastConfirmedAt = &t
	}
	return &cp
}
