//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutostartDesktopEntry(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	service := NewService()
	require.NoError(t, service.EnableAutostart("procwatch", "/opt/proc watch/procwatch"))

	entryPath := filepath.Join(configHome, "autostart", "procwatch.desktop")
	content, err := os.ReadFile(entryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `Exec="/opt/proc watch/procwatch"`)
	assert.Contains(t, string(content), "Name=procwatch")

	require.NoError(t, service.DisableAutostart("procwatch"))
	_, err = os.Stat(entryPath)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, service.DisableAutostart("procwatch"))
}

func TestAutostartValidatesArgs(t *testing.T) {
	service := NewService()
	assert.Error(t, service.EnableAutostart("", "/bin/true"))
	assert.Error(t, service.EnableAutostart("procwatch", ""))
	assert.Error(t, service.DisableAutostart(""))
}

func TestAppConfigDir(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir, err := AppConfigDir(NewService(), "procwatch")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configHome, "procwatch"), dir)
}
