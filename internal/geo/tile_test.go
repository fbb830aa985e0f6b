package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile_Deterministic(t *testing.T) {
	a, err := Tile(39.7684, -86.1581, DefaultTileSize)
	require.NoError(t, err)
	b, err := Tile(39.7684, -86.1581, DefaultTileSize)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "79:-173", a)
}

func TestTile_Negative(t *testing.T) {
	tile, err := Tile(-0.1, -0.1, 1)
	require.NoError(t, err)
	assert.Equal(t, "-1:-1", tile)
}

func TestTile_MonotonicInSize(t *testing.T) {
	// Точки из одного тайла размера S остаются в одном тайле размера 2S
	points := []Point{{39.51, -86.49}, {39.99, -86.01}, {39.75, -86.25}}
	for _, size := range []float64{0.125, 0.25, 0.5, 1} {
		first, err := Tile(points[0].Lat, points[0].Lng, size)
		require.NoError(t, err)
		coarseFirst, err := Tile(points[0].Lat, points[0].Lng, size*2)
		require.NoError(t, err)
		for _, p := range points[1:] {
			fine, _ := Tile(p.Lat, p.Lng, size)
			coarse, _ := Tile(p.Lat, p.Lng, size*2)
			if fine == first {
				assert.Equal(t, coarseFirst, coarse)
			}
		}
	}
}

func TestTile_Errors(t *testing.T) {
	_, err := Tile(10, 10, 0)
	assert.Error(t, err)
	_, err = Tile(10, 10, -1)
	assert.Error(t, err)
	_, err = Tile(91, 10, 0.5)
	assert.Error(t, err)
}

func TestTile_SizeBounds(t *testing.T) {
	for _, size := range []float64{1e-300, MinTileSize / 2, math.NaN(), math.Inf(1), MaxTileSize * 2} {
		_, err := Tile(10, 10, size)
		assert.Error(t, err, "size %v", size)
	}

	// на нижней границе разные точки остаются в разных тайлах
	a, err := Tile(10, 10, MinTileSize)
	require.NoError(t, err)
	b, err := Tile(-45, 120, MinTileSize)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, "-450000:1200000", b)

	whole, err := Tile(-89.9, 179.9, MaxTileSize)
	require.NoError(t, err)
	assert.Equal(t, "-1:0", whole)
}
