package redisstore

import (
	"context"
	"time"

	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Addr:        c.Redis.Addr,
		Password:    c.Redis.Password,
		DB:          c.Redis.DB,
		DialTimeout: 5 * time.Second,
	}
}

func NewConnection(opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
		MaxRetries:  1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout+time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "ping redis at %s", opts.Addr)
	}

	return rdb, nil
}
