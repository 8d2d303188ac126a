package route

import (
	"context"

	"github.com/aerotask/routeopt/turnpoint"
)

// FindRole returns the index of the first turnpoint carrying role, or
// -1 if none does. It lets a caller locate the SSS/ESS turnpoint
// without re-deriving it from upstream task metadata.
func FindRole(tps []turnpoint.Turnpoint, role turnpoint.Role) int {
	for i, tp := range tps {
		if tp.Role == role {
			return i
		}
	}
	return -1
}

// CumulativePoint is one entry of the cumulative-distance report:
// the centre-route and optimized-route distance, in kilometres,
// accumulated through turnpoint index i.
type CumulativePoint struct {
	CentreKm    float64
	OptimizedKm float64
}

// Cumulative reports, for every turnpoint index i, the cumulative
// centre-route distance and the cumulative iteratively-refined
// optimal distance through T0..Ti (§4.7). The optimized figure at
// index i is the full optimum of the shorter task truncated at i; it
// is not assumed to be a prefix of the n-turnpoint optimum, so each
// index re-runs refine on its own truncated turnpoint slice.
func Cumulative(ctx context.Context, tps []turnpoint.Turnpoint, cfg Config) ([]CumulativePoint, error) {
	if len(tps) == 0 {
		return nil, ErrEmptyTurnpoints
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateGoalLines(tps); err != nil {
		return nil, err
	}

	report := make([]CumulativePoint, len(tps))
	centreSoFar := 0.0

	for i := range tps {
		if i > 0 {
			centreSoFar += CentreDistance(tps[i-1:i+1]).Metre() / 1000.0
		}

		optimizedKm := 0.0
		if i >= 1 {
			dist, _, err := refine(ctx, tps[:i+1], cfg)
			if err != nil {
				return nil, err
			}
			optimizedKm = dist / 1000.0
		}

		report[i] = CumulativePoint{CentreKm: centreSoFar, OptimizedKm: optimizedKm}
	}

	return report, nil
}
