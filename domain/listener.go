package domain

// ListenerID is the opaque token returned by AddListener.
type ListenerID string

// Callback receives the dispatch payload. A non-nil error aborts the rest
// of the dispatch chain and is returned to the caller of Dispatch.
type Callback func(payload any) error

type Listener struct {
	ID           ListenerID   `json:"id"`
	EventName    string       `json:"event_name"`
	Callback     Callback     `json:"-"`
	Dependencies []ListenerID `json:"dependencies"`
}
