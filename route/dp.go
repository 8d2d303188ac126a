package route

import (
	"context"
	"math"
	"sort"

	"github.com/aerotask/routeopt/geod"
	"github.com/aerotask/routeopt/turnpoint"
)

// dpKey canonicalises a point's coordinates as integer-scaled
// lat/lon, so that two floating-point results of the same
// deterministic optimal_touch computation compare equal as map keys
// even across repeated evaluations.
type dpKey struct {
	lat int64
	lon int64
}

const keyScale = 1e7

func canonKey(p geod.Point) dpKey {
	return dpKey{
		lat: int64(math.Round(float64(p.Lat) * keyScale)),
		lon: int64(math.Round(float64(p.Lon) * keyScale)),
	}
}

// dpEntry is one candidate in a DP stage: the point itself, the best
// cumulative distance reaching it, and the key of its predecessor in
// the previous stage.
type dpEntry struct {
	point  geod.Point
	dist   float64
	parent dpKey
}

type dpStage map[dpKey]dpEntry

// lessKey orders keys lexicographically by (lat, lon), the
// deterministic tie-break used when pruning a stage to its beam
// width and when selecting the final winning candidate.
func lessKey(a, b dpKey) bool {
	if a.lat != b.lat {
		return a.lat < b.lat
	}
	return a.lon < b.lon
}

// pruneToBeam keeps the beamWidth entries with the smallest distance,
// breaking ties by lessKey, and returns the surviving keys in no
// particular order.
func pruneToBeam(stage dpStage, beamWidth int) dpStage {
	if len(stage) <= beamWidth {
		return stage
	}

	keys := make([]dpKey, 0, len(stage))
	for k := range stage {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ei, ej := stage[keys[i]], stage[keys[j]]
		if ei.dist != ej.dist {
			return ei.dist < ej.dist
		}
		return lessKey(keys[i], keys[j])
	})

	pruned := make(dpStage, beamWidth)
	for _, k := range keys[:beamWidth] {
		pruned[k] = stage[k]
	}
	return pruned
}

// runDPPass executes one forward DP pass over tps, per §4.4. overrides,
// when non-nil, must have len(tps) entries; overrides[j] is the
// previous pass's touch point on turnpoint j, used as the look-ahead
// target for stage j-1 (§4.5). Returns the total distance and the
// resulting route, including T0.Centre as route[0].
func runDPPass(ctx context.Context, tps []turnpoint.Turnpoint, cfg Config, overrides []geod.Point) (float64, []geod.Point, error) {
	n := len(tps)
	stages := make([]dpStage, n)
	stages[0] = dpStage{canonKey(tps[0].Centre): {point: tps[0].Centre, dist: 0}}

	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, ErrCancelled
		}

		var target geod.Point
		if i < n-1 {
			if overrides != nil {
				target = overrides[i+1]
			} else {
				target = tps[i+1].Centre
			}
		} else {
			target = tps[i].Centre
		}

		next := make(dpStage)
		for prevKey, prevEntry := range stages[i-1] {
			touch := tps[i].OptimalTouch(prevEntry.point, target)
			leg := geod.Distance(prevEntry.point, touch).Metre()
			total := prevEntry.dist + leg

			k := canonKey(touch)
			if existing, ok := next[k]; !ok || total < existing.dist {
				next[k] = dpEntry{point: touch, dist: total, parent: prevKey}
			}
		}

		stages[i] = pruneToBeam(next, cfg.BeamWidth)
	}

	last := stages[n-1]
	var bestKey dpKey
	bestEntry := dpEntry{dist: math.Inf(1)}
	first := true
	for k, e := range last {
		if first || e.dist < bestEntry.dist || (e.dist == bestEntry.dist && lessKey(k, bestKey)) {
			bestKey, bestEntry = k, e
			first = false
		}
	}

	path := make([]geod.Point, n)
	path[n-1] = bestEntry.point
	currentKey := bestKey
	for i := n - 1; i > 0; i-- {
		entry := stages[i][currentKey]
		currentKey = entry.parent
		path[i-1] = stages[i-1][currentKey].point
	}

	return bestEntry.dist, path, nil
}
