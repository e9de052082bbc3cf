package registry

import (
	"fmt"
	"time"

	"procwatch/internal/core/model"
)

// RenderStatus computes the display state of a timer at now.
func RenderStatus(timer model.Timer, now time.Time) model.DisplayStatus {
	if !timer.Active {
		return model.DisplayStatus{State: model.StateInactive}
	}
	if !timer.ProcessFound {
		return model.DisplayStatus{State: model.StateMonitoring}
	}
	return model.DisplayStatus{
		State:     model.StateActive,
		Remaining: FormatRemaining(Remaining(timer, now)),
	}
}

// Remaining returns the time left until the timer is due, never negative.
func Remaining(timer model.Timer, now time.Time) time.Duration {
	remaining := timer.Interval() - now.Sub(timer.LastNotified)
	if remaining < 0 {
		return 0
	}
	return remaining.Truncate(time.Second)
}

// FormatRemaining formats a duration as HH:MM:SS.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Describe renders a numbered list row for the timer at index.
func Describe(index int, timer model.Timer, now time.Time) string {
	status := RenderStatus(timer, now)
	row := fmt.Sprintf("%d. %s - %s - %d min. (%s)",
		index+1,
		timer.ProcessName,
		timer.Message,
		timer.IntervalMinutes,
		status.State,
	)
	if status.Remaining != "" {
		row += " - Next: " + status.Remaining
	}
	return row
}
