package turnpoint

import "github.com/aerotask/routeopt/geod"

// GoalType is the task-level goal type declared by an upstream task,
// distinct from Kind: GoalType drives how FromTask builds the final
// Turnpoint, while Kind is the resulting, already-resolved value.
type GoalType int

const (
	// GoalCylinder is the default: the goal is touched like any other
	// cylinder turnpoint.
	GoalCylinder GoalType = iota
	// GoalLineType marks the goal as a line crossing.
	GoalLineType
)

// Input is one turnpoint as ingested from an upstream task, per the
// adapter's external contract: a flat (lat, lon, radius, role) tuple,
// with no knowledge of goal lines — that is resolved task-wide by
// TaskInput.GoalType and applied only to the final entry.
type Input struct {
	Lat     geod.Degrees
	Lon     geod.Degrees
	RadiusM float64
	Role    Role
	Name    string
}

// TaskInput is an already-parsed task: an ordered turnpoint list plus
// the task-level goal declaration. The first entry is conventionally
// the takeoff; the last is the goal.
type TaskInput struct {
	Turnpoints  []Input
	GoalType    GoalType
	LineLengthM float64 // optional; 0 means "not specified"
}

// FromTask converts a parsed task into the core's turnpoint sequence.
// Every entry is transcribed as-is except the last: when GoalType is
// GoalLineType, the last entry's Kind becomes GoalLine, its RadiusM is
// zeroed (goal lines carry no cylinder), and its LineLengthM is
// resolved by the fallback chain task-provided length, then twice the
// last source turnpoint's radius, then 400.0 (grounded on
// _task_to_turnpoints / _find_optimal_goal_line_point's identical
// fallback in the original implementation).
func FromTask(task TaskInput) ([]Turnpoint, error) {
	if len(task.Turnpoints) == 0 {
		return nil, ErrEmptyTurnpoints
	}

	result := make([]Turnpoint, len(task.Turnpoints))
	for i, in := range task.Turnpoints {
		centre := geod.NewPoint(in.Lat, in.Lon)
		if !centre.Valid() {
			return nil, ErrInvalidPoint
		}
		result[i] = Turnpoint{
			Centre:  centre,
			RadiusM: in.RadiusM,
			Kind:    Cylinder,
			Name:    in.Name,
			Role:    in.Role,
		}
	}

	if task.GoalType == GoalLineType {
		last := len(result) - 1
		lineLength := task.LineLengthM
		if lineLength <= 0 {
			lineLength = 2 * task.Turnpoints[last].RadiusM
		}
		if lineLength <= 0 {
			lineLength = 400.0
		}
		result[last].Kind = GoalLine
		result[last].RadiusM = 0
		result[last].LineLengthM = lineLength
	}

	for i, tp := range result {
		if tp.Kind == GoalLine && (i != len(result)-1 || tp.LineLengthM <= 0) {
			return nil, ErrInvalidGoalLine
		}
	}

	return result, nil
}
