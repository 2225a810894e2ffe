package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b Coordinate
	}{
		{"same hemisphere", Coordinate{Lat: 12.97, Lng: 77.59}, Coordinate{Lat: 13.08, Lng: 80.27}},
		{"across equator", Coordinate{Lat: -33.87, Lng: 151.21}, Coordinate{Lat: 35.68, Lng: 139.69}},
		{"across date line", Coordinate{Lat: 64.5, Lng: 179.9}, Coordinate{Lat: 64.5, Lng: -179.9}},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, Distance(tc.a, tc.b), Distance(tc.b, tc.a), 1e-9)
		})
	}
}

func TestDistance_IdenticalPoints(t *testing.T) {
	p := Coordinate{Lat: 25.03, Lng: 121.56}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownDistances(t *testing.T) {
	// Bangalore city center to Whitefield is about 17 km straight line.
	bangalore := Coordinate{Lat: 12.9716, Lng: 77.5946}
	whitefield := Coordinate{Lat: 12.9698, Lng: 77.7500}
	assert.InDelta(t, 16.9, Distance(bangalore, whitefield), 0.5)

	// One degree of latitude along a meridian is about 111.2 km.
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 1, Lng: 0}
	assert.InDelta(t, 111.2, Distance(a, b), 0.1)
}

func TestDistance_AntipodalPoints(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0, Lng: 180}
	// Half the Earth's circumference, no special casing needed.
	assert.InDelta(t, 20015.0, Distance(a, b), 1.0)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 5.0, RoundKm(4.97))
	assert.Equal(t, 4.9, RoundKm(4.94))
	assert.Equal(t, 0.0, RoundKm(0.04))
	assert.Equal(t, 12.5, RoundKm(12.45))
}

func TestCoordinate_Validate(t *testing.T) {
	require.NoError(t, Coordinate{Lat: 90, Lng: 180}.Validate())
	require.NoError(t, Coordinate{Lat: -90, Lng: -180}.Validate())
	assert.Error(t, Coordinate{Lat: 90.1, Lng: 0}.Validate())
	assert.Error(t, Coordinate{Lat: 0, Lng: -180.1}.Validate())
}

func TestBoundAround_ContainsRadius(t *testing.T) {
	center := Coordinate{Lat: 12.97, Lng: 77.59}
	bound := BoundAround(center, 10)

	// A point 5 km north must be inside the bound.
	near := Coordinate{Lat: center.Lat + 5.0/111.2, Lng: center.Lng}
	assert.True(t, bound.Contains(near))
	require.LessOrEqual(t, Distance(center, near), 10.0)

	// A point 15 km north must be outside.
	far := Coordinate{Lat: center.Lat + 15.0/111.2, Lng: center.Lng}
	assert.False(t, bound.Contains(far))
}
