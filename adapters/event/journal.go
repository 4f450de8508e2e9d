package event

import (
	"context"
	"time"

	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/domain/journal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// journaledDispatcher records the outcome of every Dispatch in a journal.
// Journal failures are logged and never change the dispatch result.
type journaledDispatcher struct {
	domain.EventDispatcher

	journal journal.Store
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewJournaledDispatcher(inner domain.EventDispatcher, store journal.Store, logger *zap.SugaredLogger) *journaledDispatcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &journaledDispatcher{
		EventDispatcher: inner,
		journal:         store,
		logger:          logger,
		now:             time.Now,
	}
}

func (jd *journaledDispatcher) Dispatch(eventName string, payload any) error {
	var listeners int
	if inspector, ok := jd.EventDispatcher.(domain.ListenerInspector); ok {
		listeners = len(inspector.Listeners(eventName))
	}

	start := jd.now()
	err := jd.EventDispatcher.Dispatch(eventName, payload)

	entry := journal.Entry{
		ID:        uuid.New(),
		EventName: eventName,
		Listeners: listeners,
		Duration:  jd.now().Sub(start),
		CreatedAt: start.UTC(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if jerr := jd.journal.Record(context.Background(), entry); jerr != nil {
		jd.logger.Errorw("cannot record dispatch", "event", eventName, "error", jerr)
	}

	return err
}

func (jd *journaledDispatcher) Listeners(eventName string) []domain.Listener {
	if inspector, ok := jd.EventDispatcher.(domain.ListenerInspector); ok {
		return inspector.Listeners(eventName)
	}

	return nil
}
