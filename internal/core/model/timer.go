package model

import "time"

// Timer binds a process name to a repeating reminder message.
type Timer struct {
	ProcessName     string
	IntervalMinutes int
	Message         string
	Active          bool
	LastNotified    time.Time
	// ProcessFound caches the last observed liveness for display.
	ProcessFound bool
}

// Interval returns the notification period.
func (timer Timer) Interval() time.Duration {
	return time.Duration(timer.IntervalMinutes) * time.Minute
}

// State is the display state of a timer.
type State string

const (
	StateInactive   State = "Inactive"
	StateMonitoring State = "Monitoring..."
	StateActive     State = "Active"
)

// DisplayStatus is the rendered state of a timer at a point in time.
type DisplayStatus struct {
	State     State
	Remaining string
}

// String formats the status as shown in timer lists.
func (status DisplayStatus) String() string {
	if status.Remaining == "" {
		return string(status.State)
	}
	return string(status.State) + " - Next: " + status.Remaining
}
