package listeners_test

import (
	"testing"

	"github.com/Sententiaregum/flux-container/adapters/event"
	"github.com/Sententiaregum/flux-container/adapters/event/listeners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegister(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var (
		ed  = event.NewEventDispatcher()
		ids = listeners.Register(ed, listeners.NewTraceListeners(zap.New(core).Sugar(), "SAVED", "DELETED")...)
	)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Len(t, ed.Listeners("SAVED"), 1)
	assert.Len(t, ed.Listeners("DELETED"), 1)

	require.NoError(t, ed.Dispatch("SAVED", "payload"))

	entries := logs.FilterMessage("event dispatched").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "SAVED", entries[0].ContextMap()["event"])
	assert.Equal(t, "payload", entries[0].ContextMap()["payload"])
}

func TestTraceListenerWithoutLogger(t *testing.T) {
	l := listeners.NewTraceListener("SAVED", nil)

	assert.Equal(t, "SAVED", l.EventName())
	assert.NoError(t, l.EventHandler(nil))
}
