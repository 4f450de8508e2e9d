package journal

import (
	"context"
	"time"

	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/google/uuid"
)

// Entry describes the outcome of one Dispatch call.
type Entry struct {
	ID        uuid.UUID     `json:"id"`
	EventName string        `json:"event_name"`
	Listeners int           `json:"listeners"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

type Store interface {
	Record(ctx context.Context, entry Entry) error
	List(ctx context.Context, eventName string, paging *pagination.Paging) ([]Entry, error)
}
