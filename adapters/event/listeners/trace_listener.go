package listeners

import (
	"go.uber.org/zap"
)

// TraceListener logs every payload dispatched for its event.
type TraceListener struct {
	eventName string
	logger    *zap.SugaredLogger
}

func NewTraceListener(eventName string, logger *zap.SugaredLogger) TraceListener {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return TraceListener{eventName: eventName, logger: logger}
}

// NewTraceListeners returns one TraceListener per event name.
func NewTraceListeners(logger *zap.SugaredLogger, eventNames ...string) []EventListener {
	out := make([]EventListener, 0, len(eventNames))
	for _, name := range eventNames {
		out = append(out, NewTraceListener(name, logger))
	}

	return out
}

func (l TraceListener) EventName() string {
	return l.eventName
}

func (l TraceListener) EventHandler(payload any) error {
	l.logger.Infow("event dispatched", "event", l.eventName, "payload", payload)

	return nil
}
