// Package loop implements the interactive read, accumulate and report loop.
package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexander-akhmetov/attitude/internal/attitude"
	"github.com/alexander-akhmetov/attitude/internal/debug"
	"github.com/alexander-akhmetov/attitude/internal/event"
	"github.com/alexander-akhmetov/attitude/internal/input"
)

// User-facing messages.
const (
	WelcomeText = "----------------- Welcome to the Attitude Tracker -----------------\n" +
		"Please input the new attitude as 3 integers separated by commas or spaces\n" +
		"To exit, type \"quit\" when prompted for user input\n"
	InvalidText = "Invalid input. Try Again."
	QuitText    = "Quitting"
	GoodbyeText = "\nHave a good day!"
)

// Source yields validated inputs. Errors wrapping input.ErrInvalid are
// reported and the loop asks again; any other error ends the session.
type Source interface {
	Next(ctx context.Context) (input.Input, error)
}

// Config holds the loop settings.
type Config struct {
	Policy attitude.OverflowPolicy
	Start  attitude.Attitude
}

// Result summarizes a finished session.
type Result struct {
	ExitReason ExitReason
	Applied    int // increments accumulated
	Rejected   int // increments refused by the overflow policy
	Invalid    int // lines that failed validation
	Final      attitude.Attitude
	Planet     attitude.Planet
}

// Loop owns the accumulated attitude for one session.
type Loop struct {
	engine  Engine
	source  Source
	onEvent event.Handler

	current  attitude.Attitude
	applied  int
	rejected int
	invalid  int
}

// New creates a Loop reading from source. onEvent may be nil.
func New(config Config, source Source, onEvent event.Handler) *Loop {
	return &Loop{
		engine:  Engine{Policy: config.Policy},
		source:  source,
		onEvent: onEvent,
		current: config.Start,
	}
}

// Current returns the accumulated attitude.
func (l *Loop) Current() attitude.Attitude {
	return l.current
}

// Result returns a summary of the session so far.
func (l *Loop) Result(reason ExitReason) *Result {
	return &Result{
		ExitReason: reason,
		Applied:    l.applied,
		Rejected:   l.rejected,
		Invalid:    l.invalid,
		Final:      l.current,
		Planet:     l.current.Planet(),
	}
}

// Apply accumulates delta into the current attitude and returns the event
// describing the outcome, either pointing or overflow.
func (l *Loop) Apply(delta attitude.Attitude) event.Event {
	return l.record(l.engine.Decide(l.current, input.Increment(delta)), delta)
}

// record stores the outcome of an accumulate or reject action.
func (l *Loop) record(action Action, delta attitude.Attitude) event.Event {
	l.current = action.Next

	var ev event.Event
	if action.Kind == ActionReject {
		l.rejected++
		ev = event.Overflow(l.current, "Overflow: "+action.Err.Error())
	} else {
		l.applied++
		ev = event.Pointing(l.current)
	}
	debug.Logf("loop: delta=(%s) attitude=(%s) planet=%s", delta, l.current, ev.Planet)
	l.emit(ev)
	return ev
}

// Reject records a line that failed validation.
func (l *Loop) Reject() event.Event {
	l.invalid++
	ev := event.Invalid(InvalidText)
	l.emit(ev)
	return ev
}

// Run emits the welcome message and processes inputs until the source
// yields quit, the context is canceled or the source fails.
func (l *Loop) Run(ctx context.Context) (*Result, error) {
	l.emit(event.Welcome(WelcomeText))

	for {
		in, err := l.source.Next(ctx)
		if err != nil {
			if errors.Is(err, input.ErrInvalid) {
				l.Reject()
				continue
			}
			if ctx.Err() != nil {
				debug.Logf("loop: canceled: %v", ctx.Err())
				return l.Result(ExitReasonCanceled), nil
			}
			return l.Result(ExitReasonError), fmt.Errorf("input source: %w", err)
		}

		action := l.engine.Decide(l.current, in)
		if action.Kind == ActionExit {
			l.emit(event.Quit(QuitText))
			l.emit(event.Goodbye(GoodbyeText))
			return l.Result(action.ExitReason), nil
		}

		l.record(action, in.Increment)
	}
}

func (l *Loop) emit(ev event.Event) {
	if l.onEvent != nil {
		l.onEvent(ev)
	}
}
