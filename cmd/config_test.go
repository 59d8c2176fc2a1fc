package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Database.Pool.MaxOpenConns)
	assert.False(t, cfg.Queue.Enabled)
	assert.Equal(t, "notifications", cfg.Queue.ToQueueConfig().Queue)
	assert.Equal(t, int64(1), cfg.Numbering.NodeID)
	assert.Equal(t, "0 0 2 * * MON", cfg.Jobs.SettlementSchedule)
	assert.True(t, cfg.Statuses.SeedOnStart)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  port: "9000"
database:
  driver: sqlite
  dsn: file:courierhub.db
jobs:
  outbox_batch_size: 25
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("STATUSES_SEED_ON_START", "false")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:courierhub.db", cfg.Database.DSN)
	assert.Equal(t, 25, cfg.Jobs.OutboxBatchSize)
	assert.False(t, cfg.Statuses.SeedOnStart)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NUMBERING_NODE_ID=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("NUMBERING_NODE_ID") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Numbering.NodeID)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("http: [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}
