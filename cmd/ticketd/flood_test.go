package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

func TestFloodAccountsForEveryInsert(t *testing.T) {
	opts := floodOptions{Producers: 8, PerProd: 200, Capacity: 2}
	rep, err := runFlood(context.Background(), logger.Nop(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(opts.Producers*opts.PerProd), rep.Accepted+rep.Rejected)
	assert.Equal(t, int(rep.Accepted), rep.Stored)
	assert.Zero(t, rep.Retries)
}

func TestFloodWithRetryStoresEverything(t *testing.T) {
	opts := floodOptions{Producers: 4, PerProd: 100, Capacity: 1, Retry: true}
	rep, err := runFlood(context.Background(), logger.Nop(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(400), rep.Accepted)
	assert.Zero(t, rep.Rejected)
	assert.Equal(t, 400, rep.Stored)
}

func TestFloodRejectsBadOptions(t *testing.T) {
	_, err := runFlood(context.Background(), logger.Nop(), floodOptions{Producers: 0, PerProd: 1})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "ticketd version dev\n", out.String())
}
