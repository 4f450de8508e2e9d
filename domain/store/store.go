package store

import (
	"errors"

	"github.com/Sententiaregum/flux-container/domain"
)

var (
	ErrMissingEventName      = errors.New("subscription needs an event name")
	ErrDuplicateSubscription = errors.New("cannot attach multiple listeners to one event")
	ErrNoTokenForEvent       = errors.New("no handler is registered for the event in this store")
)

// Handler computes the next state from the payload values named by
// Subscription.Params, in the same order.
type Handler func(values ...any) (any, error)

// ChangeHandler is notified with the new state after every refresh.
type ChangeHandler func(state any)

type Subscription struct {
	Event        string
	Params       []string
	Dependencies []domain.ListenerID
	Handler      Handler
}

type Store interface {
	State() any
	Token(eventName string) (domain.ListenerID, error)
	Subscribe(handler ChangeHandler) (unsubscribe func())
}
