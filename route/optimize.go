// Package route implements the dynamic-programming task route
// optimizer: given a sequence of turnpoints, it searches for the
// shortest geodesic polyline that touches each in order, using
// beam-pruned dynamic programming refined over several passes.
package route

import (
	"context"

	"github.com/starboard-nz/units"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

// Result is the outcome of Optimize: the total route distance and the
// polyline of touch points, route[0] being the first turnpoint's
// centre exactly.
type Result struct {
	Distance units.Distance
	Route    []geod.Point
}

// Optimize runs the iteratively-refined DP route search (§4.4, §4.5)
// over tps with the given configuration. A context is accepted for
// cooperative cancellation between DP stages and refinement passes
// (§5); it carries no timeout of its own.
//
// Fewer than two turnpoints is not an error: per §4.4's degenerate
// case, Optimize returns distance 0 and the list of centres.
func Optimize(ctx context.Context, tps []turnpoint.Turnpoint, cfg Config) (Result, error) {
	if len(tps) == 0 {
		return Result{}, ErrEmptyTurnpoints
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateGoalLines(tps); err != nil {
		return Result{}, err
	}

	if len(tps) < 2 {
		route := make([]geod.Point, len(tps))
		for i, tp := range tps {
			route[i] = tp.Centre
		}
		return Result{Distance: units.Metre(0), Route: route}, nil
	}

	dist, pts, err := refine(ctx, tps, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{Distance: units.Metre(dist), Route: pts}, nil
}

// validateGoalLines enforces that a GoalLine turnpoint only ever
// appears as the final entry, and only with a positive line length;
// anywhere else it is malformed input (§4.4, §7).
func validateGoalLines(tps []turnpoint.Turnpoint) error {
	for i, tp := range tps {
		if tp.Kind != turnpoint.GoalLine {
			continue
		}
		if i != len(tps)-1 || tp.LineLengthM <= 0 {
			return ErrInvalidGoalLine
		}
	}
	return nil
}

// Savings returns the absolute and percentage distance saved by the
// optimized route relative to the centre-route baseline.
func Savings(centre, optimized units.Distance) (savingsM, savingsPercent float64) {
	savingsM = centre.Metre() - optimized.Metre()
	if centre.Metre() > 0 {
		savingsPercent = savingsM / centre.Metre() * 100
	}
	return savingsM, savingsPercent
}
