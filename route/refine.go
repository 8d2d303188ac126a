package route

import (
	"context"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

// refine runs §4.5's iterative refinement: pass 0 is a plain DP pass;
// each subsequent pass uses the previous pass's touch points as
// look-ahead targets. It stops as soon as a pass fails to improve on
// the best distance seen so far, and returns that best result.
func refine(ctx context.Context, tps []turnpoint.Turnpoint, cfg Config) (float64, []geod.Point, error) {
	bestDist, bestRoute, err := runDPPass(ctx, tps, cfg, nil)
	if err != nil {
		return 0, nil, err
	}

	currentRoute := bestRoute
	for k := 1; k < cfg.Iterations; k++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, ErrCancelled
		}

		dist, r, err := runDPPass(ctx, tps, cfg, currentRoute)
		if err != nil {
			return 0, nil, err
		}

		if dist >= bestDist {
			break
		}
		bestDist, bestRoute = dist, r
		currentRoute = r
	}

	return bestDist, bestRoute, nil
}
