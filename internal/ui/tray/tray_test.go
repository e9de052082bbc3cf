package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"procwatch/internal/core/monitor"
)

func TestSummary(t *testing.T) {
	rows := []monitor.Row{
		{Active: true, ProcessFound: true},
		{Active: true},
		{Active: false, ProcessFound: true},
	}
	assert.Equal(t, "2 active, 1 running", Summary(rows))
	assert.Equal(t, "0 active, 0 running", Summary(nil))
}

func TestStatusWithoutTray(t *testing.T) {
	manager := New(nil, Callbacks{})
	manager.SetStatus([]monitor.Row{{Active: true}})
	assert.Equal(t, "Status: 1 active, 0 running", manager.statusItem.Label)

	manager.SetPaused(true)
	assert.Equal(t, "Status: 1 active, 0 running (paused)", manager.statusItem.Label)
	assert.Equal(t, "Resume monitoring", manager.pauseItem.Label)
}
