package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerotask/routeopt/geod"
)

func TestSSSEntryWesternPoint(t *testing.T) {
	// spec.md S4: takeoff and first-touch straddle the SSS cylinder on
	// the same parallel, so the line between them crosses the perimeter
	// at its western and eastern points, whose two-leg sums are equal up
	// to rounding; the sampled search returns the western one, at the
	// same latitude.
	takeoff := geod.NewPoint(46.0, 7.0)
	sss := cyl(46.0, 7.05, 3000)
	firstTouch := geod.NewPoint(46.0, 7.10)

	entry := SSSEntry(takeoff, sss, firstTouch, 10)

	assert.InDelta(t, 46.0, float64(entry.Lat), 0.01)
	assert.Less(t, float64(entry.Lon), float64(sss.Centre.Lon))
}

func TestSSSEntryWithinRadius(t *testing.T) {
	takeoff := geod.NewPoint(46.0, 7.0)
	sss := cyl(46.0, 7.05, 3000)
	firstTouch := geod.NewPoint(46.02, 7.12)

	entry := SSSEntry(takeoff, sss, firstTouch, 10)
	assert.InDelta(t, 3000, geod.Distance(entry, sss.Centre).Metre(), 1.0)
}
