package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerotask/routeopt/turnpoint"
)

func TestFindRole(t *testing.T) {
	tps := []turnpoint.Turnpoint{
		cyl(46.0, 7.0, 0),
		cyl(46.02, 7.05, 2000),
		cyl(46.1, 7.2, 0),
	}
	tps[0].Role = turnpoint.RoleTakeoff
	tps[1].Role = turnpoint.RoleSSS

	assert.Equal(t, 0, FindRole(tps, turnpoint.RoleTakeoff))
	assert.Equal(t, 1, FindRole(tps, turnpoint.RoleSSS))
	assert.Equal(t, -1, FindRole(tps, turnpoint.RoleESS))
}

func TestCumulativeEmptyErrors(t *testing.T) {
	_, err := Cumulative(context.Background(), nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyTurnpoints)
}

func TestCumulativeFirstEntryIsZero(t *testing.T) {
	tps := []turnpoint.Turnpoint{
		cyl(46.0, 7.0, 0),
		cyl(46.02, 7.05, 2000),
		cyl(46.1, 7.2, 0),
	}
	report, err := Cumulative(context.Background(), tps, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, 0.0, report[0].CentreKm)
	assert.Equal(t, 0.0, report[0].OptimizedKm)
}

func TestCumulativeMonotonicCentre(t *testing.T) {
	tps := []turnpoint.Turnpoint{
		cyl(46.0, 7.0, 0),
		cyl(46.02, 7.05, 2000),
		cyl(46.1, 7.2, 0),
	}
	report, err := Cumulative(context.Background(), tps, DefaultConfig())
	require.NoError(t, err)

	for i := 1; i < len(report); i++ {
		assert.GreaterOrEqual(t, report[i].CentreKm, report[i-1].CentreKm)
	}
}

func TestCumulativeLastOptimizedMatchesOptimize(t *testing.T) {
	tps := []turnpoint.Turnpoint{
		cyl(46.0, 7.0, 0),
		cyl(46.02, 7.05, 2000),
		cyl(46.1, 7.2, 0),
	}
	report, err := Cumulative(context.Background(), tps, DefaultConfig())
	require.NoError(t, err)

	res, err := Optimize(context.Background(), tps, DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, res.Distance.Metre()/1000.0, report[len(report)-1].OptimizedKm, 1e-6)
}
