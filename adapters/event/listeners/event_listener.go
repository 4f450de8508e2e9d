package listeners

import (
	"github.com/Sententiaregum/flux-container/domain"
)

// EventListener is a listener bound to a single event.
type EventListener interface {
	EventName() string
	EventHandler(payload any) error
}

// Register adds every listener to the dispatcher in order and returns the
// assigned ids in the same order.
func Register(ed domain.EventDispatcher, listeners ...EventListener) []domain.ListenerID {
	ids := make([]domain.ListenerID, 0, len(listeners))
	for _, l := range listeners {
		ids = append(ids, ed.AddListener(l.EventName(), l.EventHandler))
	}

	return ids
}
