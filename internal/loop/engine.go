package loop

import (
	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/input"
)

// Engine makes pure decisions about what the loop should do next.
// It holds no I/O references, only the overflow policy.
type Engine struct {
	Policy attitude.OverflowPolicy
}

// Decide returns the action for in given the current attitude.
func (e *Engine) Decide(current attitude.Attitude, in input.Input) Action {
	if in.Kind == input.KindQuit {
		return Action{Kind: ActionExit, Next: current, ExitReason: ExitReasonQuit}
	}

	next, err := attitude.Combine(current, in.Increment, e.Policy)
	if err != nil {
		return Action{Kind: ActionReject, Next: current, Err: err}
	}
	return Action{Kind: ActionAccumulate, Next: next}
}
