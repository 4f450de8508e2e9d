package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingListenerID  = errors.New("listener id is not registered")
	ErrTokenNotRegistered = errors.New("token is not registered as listener")
	ErrCircularReference  = errors.New("circular reference detected")
	ErrNoRootDependency   = errors.New("no root dependency detected")
)

type MissingListenerIDError struct {
	ID ListenerID
}

func (e MissingListenerIDError) Error() string {
	return fmt.Sprintf("the id %q must be present in the event store", e.ID)
}

func (e MissingListenerIDError) Is(target error) bool {
	return target == ErrMissingListenerID
}

// TokenNotRegisteredError names a dependency that is absent from the
// candidate set of the dispatched event.
type TokenNotRegisteredError struct {
	Token ListenerID
}

func (e TokenNotRegisteredError) Error() string {
	return fmt.Sprintf("token %q is not registered as listener", e.Token)
}

func (e TokenNotRegisteredError) Is(target error) bool {
	return target == ErrTokenNotRegistered
}

// CircularReferenceError names the token that closes a dependency cycle.
type CircularReferenceError struct {
	Token ListenerID
}

func (e CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference detected: token %q is already processed", e.Token)
}

func (e CircularReferenceError) Is(target error) bool {
	return target == ErrCircularReference
}

// IsResolutionError reports whether err is one of the structural errors
// raised while ordering listeners, before any callback ran.
func IsResolutionError(err error) bool {
	return errors.Is(err, ErrTokenNotRegistered) ||
		errors.Is(err, ErrCircularReference) ||
		errors.Is(err, ErrNoRootDependency)
}
