package route

import (
	"math"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

// SSSEntry returns the point on the SSS cylinder's perimeter, sampled
// at the given angle step, minimising the two-leg sum
// distance(takeoffCentre, p) + distance(p, firstTouchAfterSSS). It is
// a reporting helper (§4.6): the SSS turnpoint participates in the DP
// pipeline like any other cylinder, and this is invoked afterwards to
// expose the optimal SSS entry as a separate datum.
func SSSEntry(takeoffCentre geod.Point, sss turnpoint.Turnpoint, firstTouchAfterSSS geod.Point, angleStepDeg int) geod.Point {
	ring := sss.PerimeterSamples(float64(angleStepDeg))

	best := sss.Centre
	bestSum := math.Inf(1)
	for _, p := range ring {
		candidate := geod.NewPoint(geod.Degrees(p[1]), geod.Degrees(p[0]))
		sum := geod.Distance(takeoffCentre, candidate).Metre() + geod.Distance(candidate, firstTouchAfterSSS).Metre()
		if sum < bestSum {
			bestSum = sum
			best = candidate
		}
	}
	return best
}
