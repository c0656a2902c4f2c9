package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Env: "test",
		HTTP: config.HTTPConfig{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: config.Duration{Duration: 2 * time.Second},
			MaxRequestBytes: 1 << 16,
		},
		Store: config.StoreConfig{
			Backend:         backend,
			MailboxCapacity: 4,
		},
		Tracing: config.TracingConfig{ServiceName: "ticketd-test"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func TestWireServices(t *testing.T) {
	for _, backend := range []string{config.BackendShared, config.BackendActor} {
		t.Run(backend, func(t *testing.T) {
			svcs, worker, err := wireServices(logger.Nop(), testConfig(backend), nil)
			require.NoError(t, err)
			assert.Equal(t, backend, svcs.Tickets.Backend())
			if backend == config.BackendActor {
				require.NotNil(t, worker)
				assert.Equal(t, 4, worker.Capacity())
				worker.Close()
			} else {
				assert.Nil(t, worker)
			}
		})
	}

	_, _, err := wireServices(logger.Nop(), testConfig("sqlite"), nil)
	assert.Error(t, err)
}

func TestRunStopsWorkerOnCancel(t *testing.T) {
	a, err := NewWithLogger(context.Background(), testConfig(config.BackendActor), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a.worker)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	select {
	case <-a.worker.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker still running after Run returned")
	}
}

func TestRunReportsListenError(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer held.Close()

	cfg := testConfig(config.BackendActor)
	cfg.HTTP.Addr = held.Addr().String()
	a, err := NewWithLogger(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- a.Run(context.Background()) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.NotErrorIs(t, err, errWorkerExited)
		var opErr *net.OpError
		assert.ErrorAs(t, err, &opErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return on a busy address")
	}
	select {
	case <-a.worker.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker still running after Run returned")
	}
}
