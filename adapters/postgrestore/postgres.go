package postgrestore

import (
	"context"
	"time"

	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

type Options struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN:          c.DB.DSN,
		MaxOpenConns: c.DB.MaxOpenConns,
		MaxIdleConns: c.DB.MaxIdleConns,
	}
}

func NewConnection(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", opts.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	return db, nil
}
