package event

import (
	"fmt"
	"sync"

	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/pkg/ordering"
	"go.uber.org/zap"
)

type Option func(ed *eventDispatcher)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(ed *eventDispatcher) {
		if logger != nil {
			ed.logger = logger
		}
	}
}

type eventDispatcher struct {
	listeners map[domain.ListenerID]*domain.Listener
	order     []domain.ListenerID
	counter   int
	mutex     sync.Mutex
	logger    *zap.SugaredLogger
}

func NewEventDispatcher(options ...Option) *eventDispatcher {
	ed := &eventDispatcher{logger: zap.NewNop().Sugar()}
	for _, fn := range options {
		fn(ed)
	}
	ed.Reset()

	return ed
}

func (ed *eventDispatcher) AddListener(eventName string, callback domain.Callback, dependencies ...domain.ListenerID) domain.ListenerID {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	id := domain.ListenerID(fmt.Sprintf("ID_%d", ed.counter))
	ed.counter++

	deps := make([]domain.ListenerID, len(dependencies))
	copy(deps, dependencies)

	ed.listeners[id] = &domain.Listener{
		ID:           id,
		EventName:    eventName,
		Callback:     callback,
		Dependencies: deps,
	}
	ed.order = append(ed.order, id)

	ed.logger.Debugw("listener added", "id", id, "event", eventName, "dependencies", deps)

	return id
}

func (ed *eventDispatcher) RemoveListener(id domain.ListenerID) error {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	if _, ok := ed.listeners[id]; !ok {
		return domain.MissingListenerIDError{ID: id}
	}

	delete(ed.listeners, id)
	for i, v := range ed.order {
		if v == id {
			ed.order = append(ed.order[:i], ed.order[i+1:]...)
			break
		}
	}

	ed.logger.Debugw("listener removed", "id", id)

	return nil
}

// Dispatch resolves the order of the listeners subscribed to eventName and
// runs them one after another with payload. The registry lock is released
// before any callback runs, so callbacks may dispatch again.
func (ed *eventDispatcher) Dispatch(eventName string, payload any) error {
	chain, err := ordering.Resolve(ed.Listeners(eventName))
	if err != nil {
		ed.logger.Warnw("cannot resolve listener order", "event", eventName, "error", err)
		return err
	}

	callbacks := ordering.Callbacks(chain)
	ed.logger.Debugw("dispatching", "event", eventName, "listeners", len(callbacks))

	for _, callback := range callbacks {
		if err := callback(payload); err != nil {
			return err
		}
	}

	return nil
}

func (ed *eventDispatcher) Reset() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.listeners = make(map[domain.ListenerID]*domain.Listener)
	ed.order = nil
	ed.counter = 1
}

func (ed *eventDispatcher) Listeners(eventName string) []domain.Listener {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	var snapshot []domain.Listener
	for _, id := range ed.order {
		listener := ed.listeners[id]
		if eventName != "" && listener.EventName != eventName {
			continue
		}
		record := *listener
		record.Dependencies = append([]domain.ListenerID(nil), listener.Dependencies...)
		snapshot = append(snapshot, record)
	}

	return snapshot
}
