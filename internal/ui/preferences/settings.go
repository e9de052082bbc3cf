package preferences

import (
	"time"

	"procwatch/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	PollInterval         time.Duration
	NotificationDuration time.Duration
	ResetOnDeactivate    bool
	LoadOnStartup        bool
	Autostart            bool
	NativeNotifications  bool

	// TimersFile overrides the default timers file location when set.
	TimersFile string
}

// DefaultSettings returns default settings for procwatch.
func DefaultSettings() Settings {
	return Settings{
		PollInterval:         time.Second,
		NotificationDuration: 5 * time.Second,
		ResetOnDeactivate:    true,
		LoadOnStartup:        true,
		Autostart:            false,
	}
}

// MonitorConfig converts settings to MonitorConfig.
func (settings Settings) MonitorConfig() model.MonitorConfig {
	return model.MonitorConfig{
		PollInterval: settings.PollInterval,
		Toggle: model.TogglePolicy{
			ResetOnDeactivate: settings.ResetOnDeactivate,
		},
	}
}
