// Package geod implements WGS84 ellipsoidal geodesy: the direct and
// inverse geodesic problems (Vincenty's method), degree wrapping and
// DMS parsing/formatting.
//
// Pure Go re-implementation of the Vincenty solution in
// https://github.com/chrisveness/geodesy, generalised from a
// per-model receiver type to flat functions over a single WGS84
// ellipsoid, since every caller in this module only ever works on
// that one ellipsoid.
package geod

import "math"

// Degrees is an angle in degrees. Defining it as a type makes it
// harder to accidentally mix degrees and radians.
type Degrees float64

// Radians converts d to radians.
func (d Degrees) Radians() float64 {
	return float64(d) * math.Pi / 180.0
}

// DegreesFromRadians converts radians to Degrees.
func DegreesFromRadians(radians float64) Degrees {
	return Degrees(radians * 180.0 / math.Pi)
}

// Point is a geographic location in degrees on the WGS84 ellipsoid.
// Latitude lies in [-90, 90]; longitude is normalised to (-180, 180].
type Point struct {
	Lat Degrees
	Lon Degrees
}

// NewPoint builds a Point, wrapping latitude and longitude into their
// canonical ranges.
func NewPoint(lat, lon Degrees) Point {
	lon = Wrap180(lon)
	if lon == -180 {
		lon = 180
	}
	return Point{Lat: Wrap90(lat), Lon: lon}
}

// Valid reports whether p's coordinates are usable (not NaN).
func (p Point) Valid() bool {
	return !math.IsNaN(float64(p.Lat)) && !math.IsNaN(float64(p.Lon))
}

// Equals reports whether p and other have exactly equal coordinates
// (compared with ==, no tolerance).
func (p Point) Equals(other Point) bool {
	return p.Lat == other.Lat && p.Lon == other.Lon
}

// ParseCoordinate parses a single latitude or longitude value, decimal
// or DMS, via ParseDMS (e.g. "51.47788", "51°28'40\"N").
func ParseCoordinate(s string) (Degrees, error) {
	return ParseDMS(s)
}
