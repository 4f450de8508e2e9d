package action

import (
	"errors"

	"github.com/Sententiaregum/flux-container/domain"
)

var ErrNilCreator = errors.New("the action creator must be a function factoring an action")

type DispatchFunc func(eventName string, payload any) error

// Action runs user logic and hands its results to dispatch.
type Action func(dispatch DispatchFunc) error

type Creator func(args ...any) Action

// Run builds the action from creator and executes it against dispatcher.
func Run(dispatcher domain.EventDispatcher, creator Creator, args ...any) error {
	if creator == nil {
		return ErrNilCreator
	}

	action := creator(args...)
	if action == nil {
		return ErrNilCreator
	}

	return action(dispatcher.Dispatch)
}
