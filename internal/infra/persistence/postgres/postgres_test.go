package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"bulletin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresPostgresSection(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}, Logger: slog.Default()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}

func TestPoolSampler_Observe(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sampler := newPoolSampler(logger, sql.DBStats{WaitCount: 3, WaitDuration: time.Second})

	t.Run("no new waits", func(t *testing.T) {
		buf.Reset()
		assert.False(t, sampler.observe(ctx, sql.DBStats{WaitCount: 3, WaitDuration: time.Second}))
		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		buf.Reset()
		assert.True(t, sampler.observe(ctx, sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond}))
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "waits=2")
		assert.Contains(t, buf.String(), "avgWait=5ms")
	})

	t.Run("long waits are warnings", func(t *testing.T) {
		buf.Reset()
		assert.True(t, sampler.observe(ctx, sql.DBStats{WaitCount: 6, WaitDuration: 2 * time.Second, InUse: 4, MaxOpenConnections: 4}))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "waits=1")
		assert.Contains(t, buf.String(), "inUse=4")
	})
}
