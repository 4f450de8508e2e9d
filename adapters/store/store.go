package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Sententiaregum/flux-container/domain"
	domainstore "github.com/Sententiaregum/flux-container/domain/store"
	"github.com/Sententiaregum/flux-container/pkg/payload"
	"go.uber.org/zap"
)

type Option func(s *Store)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store keeps the state computed by its subscriptions and notifies views
// after every refresh.
type Store struct {
	dispatcher domain.EventDispatcher
	logger     *zap.SugaredLogger

	// mu guards state and tokens.
	mu     sync.RWMutex
	state  any
	tokens map[string]domain.ListenerID

	viewsMu  sync.Mutex
	views    []view
	nextView int
}

type view struct {
	id      int
	handler domainstore.ChangeHandler
}

// New registers one listener per subscription on dispatcher. An initial
// state of type func() any is called once to build the state.
func New(dispatcher domain.EventDispatcher, subscriptions []domainstore.Subscription, initialState any, options ...Option) (*Store, error) {
	seen := make(map[string]struct{}, len(subscriptions))
	for _, sub := range subscriptions {
		if sub.Event == "" {
			return nil, domainstore.ErrMissingEventName
		}
		if _, ok := seen[sub.Event]; ok {
			return nil, fmt.Errorf("%w: %q", domainstore.ErrDuplicateSubscription, sub.Event)
		}
		seen[sub.Event] = struct{}{}
	}

	s := &Store{
		dispatcher: dispatcher,
		tokens:     make(map[string]domain.ListenerID, len(subscriptions)),
		logger:     zap.NewNop().Sugar(),
	}
	for _, fn := range options {
		fn(s)
	}

	if fn, ok := initialState.(func() any); ok {
		s.state = fn()
	} else {
		s.state = initialState
	}

	for _, sub := range subscriptions {
		id := dispatcher.AddListener(sub.Event, s.refreshHandler(sub), sub.Dependencies...)

		s.mu.Lock()
		s.tokens[sub.Event] = id
		s.mu.Unlock()
	}

	return s, nil
}

func (s *Store) refreshHandler(sub domainstore.Subscription) domain.Callback {
	return func(p any) error {
		values, err := payload.Extract(p, sub.Params)
		if err != nil {
			return fmt.Errorf("refresh store on %q: %w", sub.Event, err)
		}

		var next any
		if sub.Handler == nil {
			next, err = payload.Combine(sub.Params, values)
		} else {
			next, err = sub.Handler(values...)
		}
		if err != nil {
			return fmt.Errorf("refresh store on %q: %w", sub.Event, err)
		}

		s.mu.Lock()
		s.state = next
		token := s.tokens[sub.Event]
		s.mu.Unlock()

		s.logger.Debugw("store refreshed", "event", sub.Event, "token", token)
		s.emitChange(next)

		return nil
	}
}

func (s *Store) emitChange(state any) {
	s.viewsMu.Lock()
	views := make([]view, len(s.views))
	copy(views, s.views)
	s.viewsMu.Unlock()

	for _, v := range views {
		v.handler(state)
	}
}

func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store) Token(eventName string) (domain.ListenerID, error) {
	s.mu.RLock()
	id, ok := s.tokens[eventName]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", domainstore.ErrNoTokenForEvent, eventName)
	}

	return id, nil
}

// MustToken is Token for wiring code where a missing event is a programming
// error.
func (s *Store) MustToken(eventName string) domain.ListenerID {
	id, err := s.Token(eventName)
	if err != nil {
		panic(err)
	}

	return id
}

func (s *Store) Tokens() map[string]domain.ListenerID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := make(map[string]domain.ListenerID, len(s.tokens))
	for k, v := range s.tokens {
		tokens[k] = v
	}

	return tokens
}

// Subscribe attaches a view handler. The returned function detaches it and
// is safe to call more than once.
func (s *Store) Subscribe(handler domainstore.ChangeHandler) func() {
	s.viewsMu.Lock()
	defer s.viewsMu.Unlock()

	id := s.nextView
	s.nextView++
	s.views = append(s.views, view{id: id, handler: handler})

	return func() {
		s.viewsMu.Lock()
		defer s.viewsMu.Unlock()

		for i, v := range s.views {
			if v.id == id {
				s.views = append(s.views[:i], s.views[i+1:]...)
				return
			}
		}
	}
}

// Close removes every listener the store registered.
func (s *Store) Close() error {
	tokens := s.Tokens()

	var errs []error
	for event, id := range tokens {
		if err := s.dispatcher.RemoveListener(id); err != nil {
			errs = append(errs, err)
			continue
		}

		s.mu.Lock()
		delete(s.tokens, event)
		s.mu.Unlock()
	}

	return errors.Join(errs...)
}
