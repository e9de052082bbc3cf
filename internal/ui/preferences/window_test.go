package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCollectsEditedValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	prefs.pollEntry.SetText("3")
	prefs.durationEntry.SetText("not a number")
	prefs.resetCheck.SetChecked(false)
	prefs.autostart.SetChecked(true)
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.Equal(t, 3*time.Second, saved.PollInterval)
	assert.Equal(t, DefaultSettings().NotificationDuration, saved.NotificationDuration)
	assert.False(t, saved.ResetOnDeactivate)
	assert.True(t, saved.LoadOnStartup)
	assert.True(t, saved.Autostart)
}

func TestMonitorConfig(t *testing.T) {
	settings := DefaultSettings()
	config := settings.MonitorConfig()
	assert.Equal(t, time.Second, config.PollInterval)
	assert.True(t, config.Toggle.ResetOnDeactivate)
}
