package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerotask/routeopt/geod"
)

func TestCanonKeyStableForEqualPoints(t *testing.T) {
	p1 := geod.NewPoint(46.123456789, 7.987654321)
	p2 := geod.NewPoint(46.123456789, 7.987654321)
	assert.Equal(t, canonKey(p1), canonKey(p2))
}

func TestCanonKeyDistinguishesNearbyPoints(t *testing.T) {
	p1 := geod.NewPoint(46.0, 7.0)
	p2 := geod.NewPoint(46.0000001, 7.0)
	assert.NotEqual(t, canonKey(p1), canonKey(p2))
}

func TestLessKeyLexicographic(t *testing.T) {
	a := dpKey{lat: 1, lon: 5}
	b := dpKey{lat: 1, lon: 6}
	c := dpKey{lat: 2, lon: 0}

	assert.True(t, lessKey(a, b))
	assert.False(t, lessKey(b, a))
	assert.True(t, lessKey(b, c))
}

func TestPruneToBeamKeepsSmallestDistances(t *testing.T) {
	stage := dpStage{
		{lat: 1}: {dist: 5},
		{lat: 2}: {dist: 1},
		{lat: 3}: {dist: 3},
	}

	pruned := pruneToBeam(stage, 2)
	assert.Len(t, pruned, 2)
	_, hasWorst := pruned[dpKey{lat: 1}]
	assert.False(t, hasWorst)
}

func TestPruneToBeamNoopBelowWidth(t *testing.T) {
	stage := dpStage{{lat: 1}: {dist: 5}}
	pruned := pruneToBeam(stage, 10)
	assert.Len(t, pruned, 1)
}
