package postgrestore

import (
	"database/sql"
	"time"

	"github.com/Sententiaregum/flux-container/domain/journal"
	"github.com/google/uuid"
)

type JournalSchema struct {
	ID         uuid.UUID      `db:"id"`
	EventName  string         `db:"event_name"`
	Listeners  int            `db:"listeners"`
	Error      sql.NullString `db:"error"`
	DurationUS int64          `db:"duration_us"`
	CreatedAt  time.Time      `db:"created_at"`
}

func NewJournalSchema(e journal.Entry) JournalSchema {
	return JournalSchema{
		ID:         e.ID,
		EventName:  e.EventName,
		Listeners:  e.Listeners,
		Error:      sql.NullString{String: e.Error, Valid: e.Error != ""},
		DurationUS: e.Duration.Microseconds(),
		CreatedAt:  e.CreatedAt,
	}
}

func (s JournalSchema) ToDomainEntry() journal.Entry {
	return journal.Entry{
		ID:        s.ID,
		EventName: s.EventName,
		Listeners: s.Listeners,
		Error:     s.Error.String,
		Duration:  time.Duration(s.DurationUS) * time.Microsecond,
		CreatedAt: s.CreatedAt.UTC(),
	}
}
