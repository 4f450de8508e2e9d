package redisstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Sententiaregum/flux-container/adapters/event"
	"github.com/Sententiaregum/flux-container/adapters/redisstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) redisstore.Options {
	t.Helper()

	if testing.Short() {
		t.Skip("redis container tests are skipped in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return redisstore.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port()), DialTimeout: time.Second}
}

func TestBrokerRelay(t *testing.T) {
	opts := setupRedis(t)

	rdb, err := redisstore.NewConnection(opts)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	var (
		broker   = redisstore.NewBroker(rdb, nil)
		local    = event.NewEventDispatcher()
		sender   = event.NewRelay(event.NewEventDispatcher(), broker, "flux-test", nil)
		receiver = event.NewRelay(local, broker, "flux-test", nil)
		received = make(chan any, 64)
	)

	local.AddListener("SAVED", func(payload any) error {
		received <- payload
		return nil
	})
	sender.Forward("SAVED")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = receiver.Listen(ctx) }()

	// Listen subscribes asynchronously; publish until the receiver is attached.
	require.Eventually(t, func() bool {
		assert.NoError(t, sender.Dispatch("SAVED", map[string]any{"id": "42"}))
		select {
		case payload := <-received:
			assert.Equal(t, map[string]any{"id": "42"}, payload)
			return true
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
