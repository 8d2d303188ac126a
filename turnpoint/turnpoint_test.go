package turnpoint

import (
	"testing"

	"github.com/starboard-nz/orb"
	"github.com/stretchr/testify/assert"

	"github.com/aerotask/routeopt/geod"
)

func TestPerimeterSamplesZeroRadius(t *testing.T) {
	tp := Turnpoint{Centre: geod.NewPoint(46, 7), Kind: Cylinder, RadiusM: 0}
	ring := tp.PerimeterSamples(10)
	assert.Len(t, ring, 1)
}

func TestPerimeterSamplesGoalLineDegenerates(t *testing.T) {
	tp := Turnpoint{Centre: geod.NewPoint(46, 7), Kind: GoalLine, LineLengthM: 800}
	ring := tp.PerimeterSamples(10)
	assert.Len(t, ring, 1)
}

func TestPerimeterSamplesCylinder(t *testing.T) {
	tp := Turnpoint{Centre: geod.NewPoint(46, 7), Kind: Cylinder, RadiusM: 1000}
	ring := tp.PerimeterSamples(10)
	// 36 steps plus the closing point.
	assert.Len(t, ring, 37)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestGoalLineEndpointsSymmetric(t *testing.T) {
	tp := Turnpoint{Centre: geod.NewPoint(46, 7), Kind: GoalLine, LineLengthM: 800}
	ends := tp.GoalLineEndpoints(0)
	assert.Len(t, ends, 2)

	d1 := geod.Distance(fromOrbPoint(ends[0]), tp.Centre).Metre()
	d2 := geod.Distance(fromOrbPoint(ends[1]), tp.Centre).Metre()
	assert.InDelta(t, 400, d1, 1.0)
	assert.InDelta(t, 400, d2, 1.0)
}

func fromOrbPoint(p orb.Point) geod.Point {
	return geod.NewPoint(geod.Degrees(p[1]), geod.Degrees(p[0]))
}
