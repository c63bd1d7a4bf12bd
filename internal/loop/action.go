// The engine is a pure state machine that decides what the session loop does
// with each input. It returns Action values describing the new attitude; the
// loop performs the I/O.
package loop

import "github.com/alexander-akhmetov/attitude/internal/attitude"

// ActionKind identifies the type of action the runner should execute.
type ActionKind int

const (
	// ActionAccumulate replaces the current attitude with Action.Next.
	ActionAccumulate ActionKind = iota
	// ActionReject keeps the current attitude; Action.Err explains why.
	ActionReject
	// ActionExit ends the session.
	ActionExit
)

// Action is the instruction returned by the engine to the loop runner.
type Action struct {
	Kind ActionKind

	// Next is the attitude after this action (ActionAccumulate, ActionReject).
	Next attitude.Attitude
	// Err is the overflow error for ActionReject.
	Err error
	// ExitReason is set for ActionExit.
	ExitReason ExitReason
}

// ExitReason describes why a session ended.
type ExitReason string

const (
	ExitReasonQuit     ExitReason = "quit"
	ExitReasonCanceled ExitReason = "canceled"
	ExitReasonError    ExitReason = "error"
)
