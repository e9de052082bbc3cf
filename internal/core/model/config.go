package model

import "time"

// TogglePolicy controls side effects of toggling a timer.
type TogglePolicy struct {
	// ResetOnDeactivate restarts the countdown when a timer is switched off,
	// so switching it back on never fires immediately.
	ResetOnDeactivate bool
}

// MonitorConfig contains runtime settings for the process monitor.
type MonitorConfig struct {
	PollInterval time.Duration
	Toggle       TogglePolicy
}
