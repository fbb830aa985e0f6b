package geo

import (
	"fmt"
	"math"
)

const (
	// DefaultTileSize - размер тайла по умолчанию в градусах
	DefaultTileSize = 0.5
	// MinTileSize - наименьший размер тайла (около 11 м). Меньшие размеры раскрывают точную позицию,
	// а при очень малых значениях lat/size выходит за пределы int64.
	MinTileSize = 0.0001
	// MaxTileSize - один тайл покрывает все полушарие
	MaxTileSize = 180
)

// Tile возвращает детерминированный грубый ключ региона floor(lat/S):floor(lng/S).
// Клиент подписывается на тайл, не раскрывая точные координаты.
func Tile(lat, lng, size float64) (string, error) {
	if !(size >= MinTileSize && size <= MaxTileSize) {
		return "", fmt.Errorf("tile size must be within [%v, %v] degrees, got %v", float64(MinTileSize), float64(MaxTileSize), size)
	}
	if !(Point{Lat: lat, Lng: lng}).Valid() {
		return "", fmt.Errorf("invalid coordinates %v,%v", lat, lng)
	}
	return fmt.Sprintf("%d:%d", int64(math.Floor(lat/size)), int64(math.Floor(lng/size))), nil
}
