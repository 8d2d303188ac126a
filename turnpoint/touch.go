package turnpoint

import (
	"math"

	"github.com/aerotask/routeopt/geod"
)

// golden is the golden-section search ratio.
const golden = 0.6180339887498949

// minimizeUnimodal finds the x in [a, b] minimising f, to within tol,
// using golden-section search. f need only be unimodal on [a, b].
func minimizeUnimodal(f func(float64) float64, a, b, tol float64) float64 {
	c := b - golden*(b-a)
	d := a + golden*(b-a)
	fc := f(c)
	fd := f(d)
	for math.Abs(b-a) > tol {
		if fc < fd {
			b = d
			d = c
			fd = fc
			c = b - golden*(b-a)
			fc = f(c)
		} else {
			a = c
			c = d
			fc = fd
			d = a + golden*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2
}

// twoLegSum is the total geodesic distance prev -> p -> next, in metres.
func twoLegSum(prev, p, next geod.Point) float64 {
	return geod.Distance(prev, p).Metre() + geod.Distance(p, next).Metre()
}

// coarseAzimuthGridStepDeg is the resolution of the initial bracketing
// scan before golden-section refinement narrows in on the true
// minimum; the objective (two-leg detour through a point on the
// cylinder) is not guaranteed unimodal over the full circle, but is
// well approximated as unimodal within one grid cell for any cylinder
// whose radius is small relative to the distance between prev and
// next, which holds for every realistic task geometry.
const coarseAzimuthGridStepDeg = 1.0

const azimuthTolDeg = 0.01
const lineParamTol = 1e-4

// OptimalTouch returns the point on t's perimeter (or goal line)
// minimising the two-leg detour distance(prev, p) + distance(p, next),
// per spec §4.2. For a goal line, next is ignored: the route
// terminates there, and the optimal crossing depends only on the
// approach direction from prev.
func (t Turnpoint) OptimalTouch(prev, next geod.Point) geod.Point {
	if t.Kind == GoalLine {
		return t.optimalGoalLineTouch(prev)
	}

	if t.RadiusM == 0 {
		return t.Centre
	}

	objective := func(azDeg float64) float64 {
		p, _ := geod.Direct(t.Centre, geod.Degrees(azDeg), t.RadiusM)
		return twoLegSum(prev, p, next)
	}

	bestAz := 0.0
	bestVal := math.Inf(1)
	for az := 0.0; az < 360.0; az += coarseAzimuthGridStepDeg {
		v := objective(az)
		if v < bestVal {
			bestVal = v
			bestAz = az
		}
	}

	lo := bestAz - coarseAzimuthGridStepDeg
	hi := bestAz + coarseAzimuthGridStepDeg
	az := minimizeUnimodal(objective, lo, hi, azimuthTolDeg)
	az = math.Mod(az+360, 360)

	p, _ := geod.Direct(t.Centre, geod.Degrees(az), t.RadiusM)
	return p
}

// optimalGoalLineTouch implements spec §4.2's goal-line case: the
// approach azimuth from prev fixes the chord's orientation; if the
// perpendicular foot from prev falls outside the chord, the nearer
// endpoint wins, otherwise the foot itself (found by 1-D search on
// the line parameter) is the touch point.
func (t Turnpoint) optimalGoalLineTouch(prev geod.Point) geod.Point {
	approachAz, _, _ := geod.Inverse(prev, t.Centre)

	lineLength := t.LineLengthM
	if lineLength <= 0 {
		lineLength = 400.0
	}
	half := lineLength / 2
	e1, _ := geod.Direct(t.Centre, geod.Wrap360(approachAz+90), half)
	e2, _ := geod.Direct(t.Centre, geod.Wrap360(approachAz-90), half)

	e1e2Az, _, e1e2Dist := geod.Inverse(e1, e2)
	e1PrevAz, _, _ := geod.Inverse(e1, prev)

	angleDiff := math.Abs(float64(geod.Wrap180(e1e2Az - e1PrevAz)))
	if angleDiff > 90 {
		d1 := geod.Distance(prev, e1).Metre()
		d2 := geod.Distance(prev, e2).Metre()
		if d1 < d2 {
			return e1
		}
		return e2
	}

	objective := func(tParam float64) float64 {
		p, _ := geod.Direct(e1, e1e2Az, tParam*e1e2Dist.Metre())
		azToP, _, _ := geod.Inverse(prev, p)
		return math.Abs(float64(geod.Wrap180(azToP - approachAz)))
	}

	bestT := minimizeUnimodal(objective, 0, 1, lineParamTol)
	p, _ := geod.Direct(e1, e1e2Az, bestT*e1e2Dist.Metre())
	return p
}
