package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadAngleStep(t *testing.T) {
	c := DefaultConfig()
	c.AngleStepDeg = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

	c = DefaultConfig()
	c.AngleStepDeg = 91
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsBadBeamWidth(t *testing.T) {
	c := DefaultConfig()
	c.BeamWidth = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsBadIterations(t *testing.T) {
	c := DefaultConfig()
	c.Iterations = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}
