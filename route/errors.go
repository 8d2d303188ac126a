package route

import "errors"

var (
	// ErrEmptyTurnpoints indicates fewer than one turnpoint was
	// supplied where at least one is required.
	ErrEmptyTurnpoints = errors.New("route: empty turnpoint list")
	// ErrInvalidGoalLine indicates a GoalLine turnpoint at a
	// non-terminal index, or with non-positive LineLengthM.
	ErrInvalidGoalLine = errors.New("route: invalid goal line")
	// ErrInvalidConfig indicates a Config field outside its valid range.
	ErrInvalidConfig = errors.New("route: invalid configuration")
	// ErrCancelled indicates the caller's context was cancelled
	// between DP stages or refinement iterations.
	ErrCancelled = errors.New("route: optimization cancelled")
)
