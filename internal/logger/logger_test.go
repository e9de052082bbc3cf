package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := New(Options{Level: "info", Dir: dir})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("timer fired", zap.String("process", "notepad.exe"))
	require.NoError(t, log.Sync())

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"timer fired"`)
	assert.Contains(t, string(content), `"process":"notepad.exe"`)
	assert.Contains(t, string(content), `"ts":`)
	assert.NotContains(t, string(content), "hidden")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"Info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
	} {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, level.Level(), name)
	}

	level, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewWarnsOnUnknownLevel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := New(Options{Level: "loud", Dir: dir})
	require.NoError(t, err)

	log.Info("still logged")
	require.NoError(t, log.Sync())

	content, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"unknown log level, using info"`)
	assert.Contains(t, string(content), `"requested":"loud"`)
	assert.Contains(t, string(content), `"msg":"still logged"`)
}
