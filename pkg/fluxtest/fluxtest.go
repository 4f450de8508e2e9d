// Package fluxtest helps testing action creators and stores against a
// dispatcher that is isolated per test.
package fluxtest

import (
	"sync"
	"testing"

	"github.com/Sententiaregum/flux-container/adapters/action"
	"github.com/Sententiaregum/flux-container/adapters/event"
	"github.com/Sententiaregum/flux-container/domain"
	"github.com/stretchr/testify/assert"
)

// Recorder keeps the last payload dispatched for each watched event.
type Recorder struct {
	mu       sync.Mutex
	payloads map[string]any
	order    []string
}

// NewRecorder attaches a recording listener for each event to dispatcher.
func NewRecorder(dispatcher domain.EventDispatcher, events ...string) *Recorder {
	r := &Recorder{payloads: make(map[string]any)}
	for _, name := range events {
		name := name
		dispatcher.AddListener(name, func(payload any) error {
			r.mu.Lock()
			defer r.mu.Unlock()

			if _, seen := r.payloads[name]; !seen {
				r.order = append(r.order, name)
			}
			r.payloads[name] = payload
			return nil
		})
	}

	return r
}

func (r *Recorder) Payload(eventName string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payloads[eventName]
	return p, ok
}

// Events lists the recorded events in the order they were first seen.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.order...)
}

type Expectation struct {
	t        testing.TB
	err      error
	recorder *Recorder
}

// ExpectAction runs the action built by creator against a fresh dispatcher
// that records every event named in events.
func ExpectAction(t testing.TB, events []string, creator action.Creator, args ...any) *Expectation {
	t.Helper()

	ed := event.NewEventDispatcher()
	recorder := NewRecorder(ed, events...)

	return &Expectation{
		t:        t,
		err:      action.Run(ed, creator, args...),
		recorder: recorder,
	}
}

func (e *Expectation) Succeeded() *Expectation {
	e.t.Helper()
	assert.NoError(e.t, e.err)

	return e
}

func (e *Expectation) Err() error {
	return e.err
}

// Dispatched asserts that eventName was dispatched with expected.
func (e *Expectation) Dispatched(eventName string, expected any) *Expectation {
	e.t.Helper()

	actual, ok := e.recorder.Payload(eventName)
	if assert.True(e.t, ok, "missing event %q", eventName) {
		assert.Equal(e.t, expected, actual, "payload of event %q", eventName)
	}

	return e
}

func (e *Expectation) NotDispatched(eventName string) *Expectation {
	e.t.Helper()

	_, ok := e.recorder.Payload(eventName)
	assert.False(e.t, ok, "unexpected event %q", eventName)

	return e
}
