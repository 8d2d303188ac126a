package route

import (
	"github.com/starboard-nz/units"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

// CentreDistance returns the sum of geodesic legs through turnpoint
// centres, ignoring cylinder radii: the baseline a route optimizer is
// measured against. Returns 0 when fewer than two turnpoints are
// given.
func CentreDistance(turnpoints []turnpoint.Turnpoint) units.Distance {
	if len(turnpoints) < 2 {
		return units.Metre(0)
	}

	total := 0.0
	for i := 0; i < len(turnpoints)-1; i++ {
		total += geod.Distance(turnpoints[i].Centre, turnpoints[i+1].Centre).Metre()
	}
	return units.Metre(total)
}
