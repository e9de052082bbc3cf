package registry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"procwatch/internal/core/model"
)

var (
	// ErrMissingField indicates a required timer field was empty.
	ErrMissingField = errors.New("all fields are required")
	// ErrInvalidInterval indicates the interval is not a whole number of minutes in range.
	ErrInvalidInterval = errors.New("interval must be a positive integer")
)

// ValidationError reports which input field was rejected by Add.
type ValidationError struct {
	Field string
	Err   error
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", err.Field, err.Err)
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// ExistsFunc reports whether a process with the given name is running.
type ExistsFunc func(processName string) bool

// Registry is an ordered collection of timers.
// It is not safe for concurrent use; callers serialize access.
type Registry struct {
	timers []model.Timer
	policy model.TogglePolicy
}

// New creates an empty registry with the given toggle policy.
func New(policy model.TogglePolicy) *Registry {
	return &Registry{policy: policy}
}

// SetPolicy replaces the toggle policy.
func (registry *Registry) SetPolicy(policy model.TogglePolicy) {
	registry.policy = policy
}

// Add validates raw user input and appends a new active timer.
func (registry *Registry) Add(processName, interval, message string, now time.Time) (model.Timer, error) {
	processName = strings.TrimSpace(processName)
	interval = strings.TrimSpace(interval)
	message = strings.TrimSpace(message)

	switch {
	case processName == "":
		return model.Timer{}, &ValidationError{Field: "process name", Err: ErrMissingField}
	case interval == "":
		return model.Timer{}, &ValidationError{Field: "interval", Err: ErrMissingField}
	case message == "":
		return model.Timer{}, &ValidationError{Field: "message", Err: ErrMissingField}
	}

	minutes, err := ParseInterval(interval)
	if err != nil {
		return model.Timer{}, &ValidationError{Field: "interval", Err: err}
	}

	timer := model.Timer{
		ProcessName:     processName,
		IntervalMinutes: minutes,
		Message:         message,
		Active:          true,
		LastNotified:    now,
	}
	registry.timers = append(registry.timers, timer)
	return timer, nil
}

// MaxIntervalMinutes is the longest interval whose duration fits in a
// time.Duration.
const MaxIntervalMinutes = int64(math.MaxInt64 / int64(time.Minute))

// ParseInterval parses a whole number of minutes in 1..MaxIntervalMinutes.
func ParseInterval(value string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || minutes <= 0 || int64(minutes) > MaxIntervalMinutes {
		return 0, ErrInvalidInterval
	}
	return minutes, nil
}

// Toggle flips the active flag of the timer at index.
// It returns false when index is out of range.
func (registry *Registry) Toggle(index int, now time.Time) bool {
	if !registry.inRange(index) {
		return false
	}
	timer := &registry.timers[index]
	timer.Active = !timer.Active
	if !timer.Active && registry.policy.ResetOnDeactivate {
		timer.LastNotified = now
	}
	return true
}

// Delete removes the timer at index.
// It returns false when index is out of range.
func (registry *Registry) Delete(index int) bool {
	if !registry.inRange(index) {
		return false
	}
	registry.timers = append(registry.timers[:index], registry.timers[index+1:]...)
	return true
}

// List returns a copy of all timers in registry order.
func (registry *Registry) List() []model.Timer {
	return append([]model.Timer(nil), registry.timers...)
}

// Len returns the number of timers.
func (registry *Registry) Len() int {
	return len(registry.timers)
}

// Replace swaps in a new collection, restarting every countdown at now.
// Records with a non-positive interval are dropped.
func (registry *Registry) Replace(timers []model.Timer, now time.Time) {
	replaced := make([]model.Timer, 0, len(timers))
	for _, timer := range timers {
		if timer.IntervalMinutes <= 0 {
			continue
		}
		timer.LastNotified = now
		timer.ProcessFound = false
		replaced = append(replaced, timer)
	}
	registry.timers = replaced
}

// Tick advances every active timer against now and returns the messages
// that are due, in registry order.
func (registry *Registry) Tick(now time.Time, exists ExistsFunc) []string {
	var fired []string
	for i := range registry.timers {
		timer := &registry.timers[i]
		if !timer.Active {
			continue
		}

		timer.ProcessFound = exists(timer.ProcessName)
		if !timer.ProcessFound {
			timer.LastNotified = now
			continue
		}

		if now.Sub(timer.LastNotified) >= timer.Interval() {
			fired = append(fired, timer.Message)
			timer.LastNotified = now
		}
	}
	return fired
}

func (registry *Registry) inRange(index int) bool {
	return index >= 0 && index < len(registry.timers)
}
