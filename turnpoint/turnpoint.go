// Package turnpoint models a single competition turnpoint — a
// cylinder or a goal line — on the WGS84 ellipsoid, and the geometric
// operations the route optimizer needs on it: sampling its perimeter
// and finding the touch point that minimises a two-leg detour through
// it.
package turnpoint

import (
	"github.com/starboard-nz/orb"

	"github.com/aerotask/routeopt/geod"
)

// Kind distinguishes a cylinder turnpoint from a goal line.
type Kind int

const (
	// Cylinder is touched anywhere within radius of its centre.
	Cylinder Kind = iota
	// GoalLine is touched by crossing a chord through its centre.
	GoalLine
)

// Role is the opaque task-level tag a turnpoint carries (takeoff,
// start/end of speed section). The optimizer ignores it except for
// the SSS helper (package route).
type Role int

const (
	RoleNone Role = iota
	RoleTakeoff
	RoleSSS
	RoleESS
)

// Turnpoint is an immutable value describing one cylinder or goal
// line a task route must touch, in order.
type Turnpoint struct {
	Centre      geod.Point
	RadiusM     float64
	Kind        Kind
	LineLengthM float64 // only meaningful when Kind == GoalLine
	Name        string
	Role        Role
}

// toOrb converts a geod.Point to an orb.Point ([lon, lat], matching
// GeoJSON/orb's coordinate order).
func toOrb(p geod.Point) orb.Point {
	return orb.Point{float64(p.Lon), float64(p.Lat)}
}

// PerimeterSamples returns points evenly spaced around the turnpoint's
// cylinder perimeter at the given angle step, as a closed ring. A
// zero-radius cylinder and a goal line both degenerate to a single
// point ring — goal lines are sampled with OptimalTouch instead, not
// by perimeter stepping (spec §4.2).
func (t Turnpoint) PerimeterSamples(stepDeg float64) orb.Ring {
	if t.Kind == GoalLine || t.RadiusM == 0 {
		return orb.Ring{toOrb(t.Centre)}
	}

	var ring orb.Ring
	for az := 0.0; az < 360.0; az += stepDeg {
		p, _ := geod.Direct(t.Centre, geod.Degrees(az), t.RadiusM)
		ring = append(ring, toOrb(p))
	}
	ring = append(ring, ring[0])
	return ring
}

// GoalLineEndpoints returns the two endpoints of the goal line chord,
// given the approach azimuth (the forward bearing from the previous
// route point to the centre). Valid only when t.Kind == GoalLine.
func (t Turnpoint) GoalLineEndpoints(approachAzimuth geod.Degrees) orb.LineString {
	half := t.LineLengthM / 2
	e1, _ := geod.Direct(t.Centre, geod.Wrap360(approachAzimuth+90), half)
	e2, _ := geod.Direct(t.Centre, geod.Wrap360(approachAzimuth-90), half)
	return orb.LineString{toOrb(e1), toOrb(e2)}
}
