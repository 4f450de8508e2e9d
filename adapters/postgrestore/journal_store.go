package postgrestore

import (
	"context"
	"strconv"
	"time"

	"github.com/Sententiaregum/flux-container/domain/journal"
	"github.com/Sententiaregum/flux-container/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type JournalStore struct {
	db *sqlx.DB
}

func NewJournalStore(db *sqlx.DB) *JournalStore {
	return &JournalStore{db: db}
}

type journalCursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
}

func (s *JournalStore) Record(ctx context.Context, entry journal.Entry) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO dispatch_journal (id, event_name, listeners, error, duration_us, created_at)
		VALUES (:id, :event_name, :listeners, :error, :duration_us, :created_at)`,
		NewJournalSchema(entry),
	)
	if err != nil {
		return errors.Wrap(err, "insert journal entry")
	}

	return nil
}

// List returns the newest entries first. An empty event name lists every
// event.
func (s *JournalStore) List(ctx context.Context, eventName string, paging *pagination.Paging) ([]journal.Entry, error) {
	cursor, err := pagination.DecodeCursor[*journalCursor](paging.Cursor)
	if err != nil {
		return nil, errors.Wrap(err, "decode cursor")
	}

	query := `SELECT id, event_name, listeners, error, duration_us, created_at
		FROM dispatch_journal
		WHERE ($1 = '' OR event_name = $1)`
	args := []interface{}{eventName}

	if cursor != nil {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}

	query += ` ORDER BY created_at DESC, id DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, paging.Limit+1)

	var rows []JournalSchema
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select journal entries")
	}

	paging.NextCursor = ""
	if int64(len(rows)) > paging.Limit {
		rows = rows[:paging.Limit]
		last := rows[len(rows)-1]
		paging.NextCursor = pagination.EncodeCursor(journalCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	entries := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomainEntry())
	}

	return entries, nil
}
