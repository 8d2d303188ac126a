package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

func cyl(lat, lon geod.Degrees, r float64) turnpoint.Turnpoint {
	return turnpoint.Turnpoint{Centre: geod.NewPoint(lat, lon), RadiusM: r, Kind: turnpoint.Cylinder}
}

func TestCentreDistanceFewerThanTwo(t *testing.T) {
	assert.Equal(t, 0.0, CentreDistance(nil).Metre())
	assert.Equal(t, 0.0, CentreDistance([]turnpoint.Turnpoint{cyl(46, 7, 0)}).Metre())
}

func TestCentreDistanceKnown(t *testing.T) {
	// spec.md S1.
	tps := []turnpoint.Turnpoint{cyl(46.0000, 7.0000, 0), cyl(46.0100, 7.0000, 0)}
	assert.InDelta(t, 1111.949, CentreDistance(tps).Metre(), 0.5)
}

func TestCentreDistanceSymmetricUnderReversal(t *testing.T) {
	tps := []turnpoint.Turnpoint{cyl(46.0, 7.0, 0), cyl(46.05, 7.2, 0), cyl(46.1, 7.4, 0)}
	reversed := []turnpoint.Turnpoint{tps[2], tps[1], tps[0]}

	assert.InDelta(t, CentreDistance(tps).Metre(), CentreDistance(reversed).Metre(), 1e-6)
}
