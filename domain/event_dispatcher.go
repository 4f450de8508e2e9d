package domain

// EventDispatcher runs every listener subscribed to an event, ordered by the
// dependencies declared between listeners of that event.
type EventDispatcher interface {
	AddListener(eventName string, callback Callback, dependencies ...ListenerID) ListenerID
	RemoveListener(id ListenerID) error
	Dispatch(eventName string, payload any) error
	Reset()
}

// ListenerInspector exposes a read-only snapshot of registered listeners.
// An empty event name selects every listener.
type ListenerInspector interface {
	Listeners(eventName string) []Listener
}
