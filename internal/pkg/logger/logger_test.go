package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"courierhub/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_DebugModeEnablesDebugLevel(t *testing.T) {
	l := logger.New(logger.Options{Mode: "debug"})

	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_ReleaseModeWritesToFile(t *testing.T) {
	dir := t.TempDir()
	l := logger.New(logger.Options{Mode: "release", Dir: dir, Filename: "test.log"})

	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l.Info("shipment_received", zap.String("tracking_number", "CS-1"))
	require.NoError(t, l.Sync())

	content, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "shipment_received")
	assert.Contains(t, string(content), "CS-1")
}

func TestComponent_ToleratesNilLogger(t *testing.T) {
	l := logger.Component(nil, "outbox_relay_job")

	assert.NotNil(t, l)
}
