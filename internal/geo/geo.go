// Package geo provides pure geospatial primitives: coordinate validation,
// great-circle distance, display rounding, and radius bounding boxes.
// All functions are deterministic and safe for concurrent use.
package geo

import (
	"math"

	"bazaar/internal/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Validate checks that the coordinate lies within the valid WGS84 ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return errors.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return errors.Errorf("longitude %f out of range [-180, 180]", c.Lng)
	}

	return nil
}

// Point converts the coordinate to an orb.Point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula.
func Distance(a, b Coordinate) float64 {
	latARad := a.Lat * math.Pi / 180
	latBRad := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latARad)*math.Cos(latBRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal place for display. Internal
// filtering and sorting must use the unrounded value.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// Bound is a rectangular lat/lng region used to pre-filter candidates before
// the exact haversine test.
type Bound struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoundAround returns the bounding box enclosing the circle of radiusKm around
// center. The box over-selects near its corners; callers must still apply the
// exact Distance check against the radius.
func BoundAround(center Coordinate, radiusKm float64) Bound {
	b := orbgeo.NewBoundAroundPoint(center.Point(), radiusKm*1000)

	return Bound{
		MinLat: b.Min.Lat(),
		MaxLat: b.Max.Lat(),
		MinLng: b.Min.Lon(),
		MaxLng: b.Max.Lon(),
	}
}

// Contains reports whether the coordinate lies within the bound.
func (b Bound) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}
