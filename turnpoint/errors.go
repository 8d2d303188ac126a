package turnpoint

import "errors"

// ErrEmptyTurnpoints is returned when an operation requires at least
// one turnpoint but none was supplied.
var ErrEmptyTurnpoints = errors.New("turnpoint: empty turnpoint list")

// ErrInvalidGoalLine is returned when a GoalLine turnpoint is found at
// a non-terminal index, or carries a non-positive LineLengthM.
var ErrInvalidGoalLine = errors.New("turnpoint: invalid goal line")

// ErrInvalidPoint is returned when an ingested turnpoint's coordinates
// are not usable (NaN), e.g. from an upstream parse failure.
var ErrInvalidPoint = errors.New("turnpoint: invalid coordinates")
