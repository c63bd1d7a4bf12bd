// Package event defines typed events emitted by the session and consumed by
// the CLI writer and the TUI.
package event

import "github.com/alexander-akhmetov/attitude/internal/attitude"

// Kind identifies the type of event.
type Kind int

const (
	// KindWelcome is emitted once before the first prompt.
	KindWelcome Kind = iota
	// KindPointing reports the accumulated attitude and its planet.
	KindPointing
	// KindInvalid reports a rejected input line.
	KindInvalid
	// KindOverflow reports an increment rejected by the overflow policy.
	KindOverflow
	// KindQuit is emitted when the user ends the session.
	KindQuit
	// KindGoodbye is the last event of a session.
	KindGoodbye
)

var kindNames = map[Kind]string{
	KindWelcome:  "welcome",
	KindPointing: "pointing",
	KindInvalid:  "invalid",
	KindOverflow: "overflow",
	KindQuit:     "quit",
	KindGoodbye:  "goodbye",
}

// String returns the lower-case name used in JSON output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single typed event emitted by the session.
type Event struct {
	Kind     Kind
	Text     string            // plain-text rendering of the event
	Attitude attitude.Attitude // current attitude (KindPointing, KindOverflow)
	Planet   attitude.Planet   // current planet (KindPointing, KindOverflow)
}

// HasAttitude reports whether Attitude and Planet carry data.
func (e Event) HasAttitude() bool {
	return e.Kind == KindPointing || e.Kind == KindOverflow
}

// Handler is a callback that receives typed events.
type Handler func(Event)

// Welcome creates a KindWelcome event.
func Welcome(text string) Event { return Event{Kind: KindWelcome, Text: text} }

// Pointing creates a KindPointing event for a.
func Pointing(a attitude.Attitude) Event {
	p := a.Planet()
	return Event{
		Kind:     KindPointing,
		Text:     "Pointing Towards: " + p.String() + " at " + a.String(),
		Attitude: a,
		Planet:   p,
	}
}

// Invalid creates a KindInvalid event.
func Invalid(text string) Event { return Event{Kind: KindInvalid, Text: text} }

// Overflow creates a KindOverflow event. a is the attitude kept after the
// rejected increment.
func Overflow(a attitude.Attitude, text string) Event {
	return Event{Kind: KindOverflow, Text: text, Attitude: a, Planet: a.Planet()}
}

// Quit creates a KindQuit event.
func Quit(text string) Event { return Event{Kind: KindQuit, Text: text} }

// Goodbye creates a KindGoodbye event.
func Goodbye(text string) Event { return Event{Kind: KindGoodbye, Text: text} }
