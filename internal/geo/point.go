// Package geo содержит пространственный индекс точек, геодезическое расстояние на эллипсоиде WGS84
// и грубые тайлы местоположения.
package geo

import (
	"math"

	"github.com/tidwall/geodesic"
)

// Point - координаты в градусах
type Point struct {
	Lat float64
	Lng float64
}

// Valid проверяет диапазоны широты и долготы
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Distance возвращает геодезическое расстояние в метрах между двумя точками на WGS84
func Distance(a, b Point) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat, a.Lng, b.Lat, b.Lng, &meters, nil, nil)
	return meters
}

// Destination возвращает точку на расстоянии meters от p по азимуту azimuth (градусы)
func Destination(p Point, azimuth, meters float64) Point {
	var lat, lng float64
	geodesic.WGS84.Direct(p.Lat, p.Lng, azimuth, meters, &lat, &lng, nil)
	return Point{Lat: lat, Lng: lng}
}
