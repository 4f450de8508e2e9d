package action_test

import (
	"errors"
	"testing"

	"github.com/Sententiaregum/flux-container/adapters/action"
	"github.com/Sententiaregum/flux-container/adapters/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("it should dispatch the payload produced by the action", func(t *testing.T) {
		ed := event.NewEventDispatcher()

		var received []any
		ed.AddListener("GREET", func(payload any) error {
			received = append(received, payload)
			return nil
		})

		greet := func(args ...any) action.Action {
			return func(dispatch action.DispatchFunc) error {
				return dispatch("GREET", map[string]any{"name": args[0]})
			}
		}

		require.NoError(t, action.Run(ed, greet, "ben"))
		assert.Equal(t, []any{map[string]any{"name": "ben"}}, received)
	})

	t.Run("it should return dispatch failures", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		boom := errors.New("boom")
		ed.AddListener("FAIL", func(any) error { return boom })

		err := action.Run(ed, func(...any) action.Action {
			return func(dispatch action.DispatchFunc) error {
				return dispatch("FAIL", nil)
			}
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("it should reject a missing creator", func(t *testing.T) {
		ed := event.NewEventDispatcher()

		assert.ErrorIs(t, action.Run(ed, nil), action.ErrNilCreator)
		assert.ErrorIs(t, action.Run(ed, func(...any) action.Action { return nil }), action.ErrNilCreator)
	})
}

func TestCache(t *testing.T) {
	cache := action.NewCache()
	calls := 0
	factory := func() any {
		calls++
		return &struct{ n int }{n: calls}
	}

	first := cache.Resolve("user", factory)
	second := cache.Resolve("user", factory)
	other := cache.Resolve("menu", factory)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, calls)
}
