// Package memory - хранилище в памяти процесса с R-tree индексом.
// Реализует те же контракты, что и Postgres-хранилище; используется при STORAGE_DRIVER=memory и в тестах.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/geo"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/service"
)

// Store - хранилище в памяти. Журнал (инциденты, офицеры, департаменты) защищен одним
// мьютексом, наблюдения - другим. Транзакция журнала копит изменения и применяет их
// целиком под блокировкой записи.
type Store struct {
	mu          sync.RWMutex
	incidents   map[uuid.UUID]*models.Incident
	byBadge     map[string][]uuid.UUID
	officers    map[string]*models.Officer
	departments map[uuid.UUID]*models.Department
	depByName   map[string]uuid.UUID
	incidentIdx *geo.Index[uuid.UUID]

	smu         sync.RWMutex
	sightings   map[uuid.UUID]*models.Sighting
	sightingIdx *geo.Index[uuid.UUID]
	expiry      expiryQueue
}

var (
	_ service.IncidentStore   = (*Store)(nil)
	_ service.OfficerStore    = (*Store)(nil)
	_ service.DepartmentStore = (*Store)(nil)
	_ service.SightingStore   = (*Store)(nil)
)

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		incidents:   make(map[uuid.UUID]*models.Incident),
		byBadge:     make(map[string][]uuid.UUID),
		officers:    make(map[string]*models.Officer),
		departments: make(map[uuid.UUID]*models.Department),
		depByName:   make(map[string]uuid.UUID),
		incidentIdx: geo.NewIndex[uuid.UUID](),
		sightings:   make(map[uuid.UUID]*models.Sighting),
		sightingIdx: geo.NewIndex[uuid.UUID](),
	}
}

type ledgerTx struct {
	incidents   []*models.Incident
	deltas      []models.OfficerDelta
	departments []string
}

func (tx *ledgerTx) InsertIncident(_ context.Context, incident *models.Incident) error {
	if !(geo.Point{Lat: incident.Latitude, Lng: incident.Longitude}).Valid() {
		return models.NewValidationError("location", "coordinates out of range")
	}
	tx.incidents = append(tx.incidents, cloneIncident(incident))
	return nil
}

func (tx *ledgerTx) ApplyOfficerDelta(_ context.Context, delta models.OfficerDelta) error {
	tx.deltas = append(tx.deltas, delta)
	return nil
}

func (tx *ledgerTx) IncrementDepartmentReports(_ context.Context, department string) error {
	tx.departments = append(tx.departments, department)
	return nil
}

// WithinTx выполняет fn и, если она успешна, применяет накопленные изменения одним шагом
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx service.LedgerTx) error) error {
	tx := &ledgerTx{}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inc := range tx.incidents {
		if _, exists := s.incidents[inc.ID]; exists {
			return fmt.Errorf("incident %s already exists: %w", inc.ID, models.ErrImmutableRecord)
		}
	}
	for _, inc := range tx.incidents {
		s.incidents[inc.ID] = inc
		if inc.BadgeNumber != "" {
			s.byBadge[inc.BadgeNumber] = append(s.byBadge[inc.BadgeNumber], inc.ID)
		}
		s.incidentIdx.Insert(inc.ID, geo.Point{Lat: inc.Latitude, Lng: inc.Longitude})
	}
	for _, d := range tx.deltas {
		officer, ok := s.officers[d.BadgeNumber]
		if !ok {
			officer = &models.Officer{}
			s.officers[d.BadgeNumber] = officer
		}
		officer.Apply(d)
	}
	for _, name := range tx.departments {
		if id, ok := s.depByName[strings.ToLower(name)]; ok {
			s.departments[id].ReportsCount++
		}
	}
	return nil
}

// GetIncident возвращает копию инцидента
func (s *Store) GetIncident(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inc, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return cloneIncident(inc), nil
}

// IncidentsInRadius возвращает инциденты в радиусе в заданном порядке
func (s *Store) IncidentsInRadius(_ context.Context, q models.RadiusQuery) ([]*models.Incident, error) {
	hits := s.incidentIdx.Within(geo.Point{Lat: q.Latitude, Lng: q.Longitude}, q.RadiusMeters)

	s.mu.RLock()
	out := make([]*models.Incident, 0, len(hits))
	for _, h := range hits {
		if inc, ok := s.incidents[h.ID]; ok {
			out = append(out, cloneIncident(inc))
		}
	}
	s.mu.RUnlock()

	if q.Order == models.OrderRecent {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return truncate(out, q.Limit), nil
}

// IncidentsByBadge возвращает инциденты по жетону, новые первыми
func (s *Store) IncidentsByBadge(_ context.Context, badge string, limit int) ([]*models.Incident, error) {
	s.mu.RLock()
	ids := s.byBadge[badge]
	out := make([]*models.Incident, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, cloneIncident(s.incidents[ids[i]]))
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit), nil
}

// CountIncidentsByBadge - полный пересчет, нужен только для проверки согласованности агрегата в тестах
func (s *Store) CountIncidentsByBadge(badge string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, id := range s.byBadge[badge] {
		if s.incidents[id].HasOfficerRef() {
			n++
		}
	}
	return n
}

// GetOfficer возвращает копию агрегата
func (s *Store) GetOfficer(_ context.Context, badge string) (*models.Officer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	officer, ok := s.officers[badge]
	if !ok {
		return nil, fmt.Errorf("officer with badge %s: %w", badge, models.ErrNotFound)
	}
	cp := *officer
	cp.TagCounts = make(map[string]int, len(officer.TagCounts))
	for k, v := range officer.TagCounts {
		cp.TagCounts[k] = v
	}
	return &cp, nil
}

// ListDepartments возвращает справочник, отсортированный по имени
func (s *Store) ListDepartments(_ context.Context) ([]*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetDepartment возвращает департамент по ID
func (s *Store) GetDepartment(_ context.Context, id uuid.UUID) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department with id %s: %w", id, models.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

// UpsertDepartment создает или обновляет контактные поля департамента по имени
func (s *Store) UpsertDepartment(_ context.Context, department *models.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(department.Name)
	now := time.Now().UTC()
	if id, ok := s.depByName[key]; ok {
		existing := s.departments[id]
		reports := existing.ReportsCount
		*existing = *department
		existing.ID = id
		existing.ReportsCount = reports
		existing.UpdatedAt = now
		department.ID = id
		return nil
	}
	cp := *department
	cp.ID = uuid.New()
	cp.ReportsCount = 0
	cp.UpdatedAt = now
	s.departments[cp.ID] = &cp
	s.depByName[key] = cp.ID
	department.ID = cp.ID
	return nil
}

func cloneIncident(inc *models.Incident) *models.Incident {
	cp := *inc
	if inc.Tags != nil {
		cp.Tags = append([]string(nil), inc.Tags...)
	}
	if inc.OfficerRating != nil {
		r := *inc.OfficerRating
		cp.OfficerRating = &r
	}
	return &cp
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
