package postgrestore

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_create_dispatch_journal",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS dispatch_journal (
					id          UUID PRIMARY KEY,
					event_name  TEXT        NOT NULL,
					listeners   INTEGER     NOT NULL DEFAULT 0,
					error       TEXT,
					duration_us BIGINT      NOT NULL DEFAULT 0,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE INDEX IF NOT EXISTS dispatch_journal_event_created_idx
					ON dispatch_journal (event_name, created_at DESC, id DESC)`,
			},
			Down: []string{`DROP TABLE IF EXISTS dispatch_journal`},
		},
	},
}

// Migrate applies every pending migration and returns how many ran.
func Migrate(db *sqlx.DB) (int, error) {
	n, err := migrate.Exec(db.DB, "postgres", migrations, migrate.Up)
	if err != nil {
		return 0, errors.Wrap(err, "migrate")
	}

	return n, nil
}
