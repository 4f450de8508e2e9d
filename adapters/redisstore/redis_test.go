package redisstore_test

import (
	"testing"
	"time"

	"github.com/Sententiaregum/flux-container/adapters/redisstore"
	"github.com/Sententiaregum/flux-container/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestParseFromConfig(t *testing.T) {
	var cfg config.Config
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.Password = "secret"
	cfg.Redis.DB = 2

	assert.Equal(t, redisstore.Options{
		Addr:        "localhost:6379",
		Password:    "secret",
		DB:          2,
		DialTimeout: 5 * time.Second,
	}, redisstore.ParseFromConfig(&cfg))
}

func TestNewConnectionUnreachable(t *testing.T) {
	_, err := redisstore.NewConnection(redisstore.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	assert.Error(t, err)
}
