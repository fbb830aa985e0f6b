package geo

import (
	"math"
	"sort"
	"sync"

	"github.com/tidwall/rtree"
)

// metersPerDegreeMin - длина градуса широты на экваторе WGS84 (минимальная), с запасом.
// Используется только для грубого bbox, точный отбор делает Distance.
const metersPerDegreeMin = 110000.0

// Hit - результат радиусного запроса
type Hit[K comparable] struct {
	ID     K
	Point  Point
	Meters float64
}

// Index - потокобезопасный индекс точек на R-дереве.
// Bbox нужен только как префильтр, принадлежность радиусу решается геодезическим расстоянием.
type Index[K comparable] struct {
	mu     sync.RWMutex
	tree   rtree.RTreeG[K]
	points map[K]Point
}

// NewIndex создает пустой индекс
func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{points: make(map[K]Point)}
}

// Insert индексирует точку. Повторная вставка того же id перемещает точку.
func (ix *Index[K]) Insert(id K, p Point) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if old, ok := ix.points[id]; ok {
		ix.tree.Delete(rect(old), rect(old), id)
	}
	ix.points[id] = p
	ix.tree.Insert(rect(p), rect(p), id)
}

// Remove удаляет точку из индекса
func (ix *Index[K]) Remove(id K) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	p, ok := ix.points[id]
	if !ok {
		return false
	}
	ix.tree.Delete(rect(p), rect(p), id)
	delete(ix.points, id)
	return true
}

// Len возвращает число точек в индексе
func (ix *Index[K]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.points)
}

// Within возвращает все точки на геодезическом расстоянии <= meters от center,
// отсортированные по возрастанию расстояния.
func (ix *Index[K]) Within(center Point, meters float64) []Hit[K] {
	if meters < 0 {
		return nil
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	hits := make([]Hit[K], 0)
	for _, box := range searchBoxes(center, meters) {
		ix.tree.Search(box[0], box[1], func(min, _ [2]float64, id K) bool {
			p := Point{Lat: min[1], Lng: min[0]}
			d := Distance(center, p)
			if d <= meters {
				hits = append(hits, Hit[K]{ID: id, Point: p, Meters: d})
			}
			return true
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Meters < hits[j].Meters })
	return hits
}

func rect(p Point) [2]float64 {
	return [2]float64{p.Lng, p.Lat}
}

// searchBoxes строит консервативные прямоугольники поиска (lng, lat).
// Около полюсов берется весь диапазон долгот, через антимеридиан прямоугольник режется на два.
func searchBoxes(center Point, meters float64) [][2][2]float64 {
	dLat := meters / metersPerDegreeMin
	minLat := math.Max(-90, center.Lat-dLat)
	maxLat := math.Min(90, center.Lat+dLat)

	maxAbsLat := math.Max(math.Abs(minLat), math.Abs(maxLat))
	if maxAbsLat >= 89.9 {
		return [][2][2]float64{{{-180, minLat}, {180, maxLat}}}
	}
	dLng := dLat / math.Cos(maxAbsLat*math.Pi/180)
	if dLng >= 180 {
		return [][2][2]float64{{{-180, minLat}, {180, maxLat}}}
	}
	minLng := center.Lng - dLng
	maxLng := center.Lng + dLng
	switch {
	case minLng < -180:
		return [][2][2]float64{
			{{-180, minLat}, {maxLng, maxLat}},
			{{minLng + 360, minLat}, {180, maxLat}},
		}
	case maxLng > 180:
		return [][2][2]float64{
			{{minLng, minLat}, {180, maxLat}},
			{{-180, minLat}, {maxLng - 360, maxLat}},
		}
	}
	return [][2][2]float64{{{minLng, minLat}, {maxLng, maxLat}}}
}
