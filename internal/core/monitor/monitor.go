package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"procwatch/internal/core/model"
	"procwatch/internal/core/registry"
	"procwatch/internal/platform"
)

// TimerStore persists the timer collection.
type TimerStore interface {
	Load() ([]model.Timer, int, error)
	Save(timers []model.Timer) error
}

// LoadResult summarizes a Load call.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// Monitor owns a timer registry and drives it on a fixed period.
// Ticks and commands are serialized, so front ends may call it from any
// goroutine.
type Monitor struct {
	mu       sync.Mutex
	config   model.MonitorConfig
	registry *registry.Registry
	scanner  platform.ProcessScanner
	store    TimerStore
	log      *zap.Logger
	now      func() time.Time
	events   []chan Event
	stopCh   chan struct{}
	resetCh  chan time.Duration
	running  bool
	paused   bool
}

// New creates a Monitor. The registry's toggle policy is taken from config.
func New(config model.MonitorConfig, reg *registry.Registry, scanner platform.ProcessScanner, store TimerStore, log *zap.Logger) *Monitor {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	reg.SetPolicy(config.Toggle)

	return &Monitor{
		config:   config,
		registry: reg,
		scanner:  scanner,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// SetClock replaces the time source used by commands.
func (monitor *Monitor) SetClock(now func() time.Time) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	monitor.now = now
}

// Subscribe registers a new observer channel.
func (monitor *Monitor) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	monitor.mu.Lock()
	monitor.events = append(monitor.events, ch)
	monitor.mu.Unlock()
	return ch
}

// Start launches the polling loop.
func (monitor *Monitor) Start() {
	monitor.mu.Lock()
	if monitor.running {
		monitor.mu.Unlock()
		return
	}
	monitor.running = true
	monitor.stopCh = make(chan struct{})
	// Each run gets its own reset channel so a period sent to a stopped
	// loop is never applied to the next one.
	monitor.resetCh = make(chan time.Duration, 1)
	interval := monitor.config.PollInterval
	stopCh := monitor.stopCh
	resetCh := monitor.resetCh
	monitor.mu.Unlock()

	monitor.log.Info("monitor started", zap.Duration("poll_interval", interval))
	go monitor.run(interval, stopCh, resetCh)
}

// Stop terminates the polling loop and closes observers.
func (monitor *Monitor) Stop() {
	monitor.mu.Lock()
	if !monitor.running {
		monitor.mu.Unlock()
		return
	}
	close(monitor.stopCh)
	monitor.running = false
	events := monitor.events
	monitor.events = nil
	monitor.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	monitor.log.Info("monitor stopped")
}

// Pause suspends ticking.
func (monitor *Monitor) Pause() {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.paused {
		return
	}
	monitor.paused = true
	monitor.emitLocked(Event{Type: EventPaused, At: monitor.now()})
}

// Resume restarts ticking. Every countdown restarts so time spent paused
// never triggers a reminder.
func (monitor *Monitor) Resume() {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if !monitor.paused {
		return
	}
	monitor.paused = false
	now := monitor.now()
	monitor.registry.Replace(monitor.registry.List(), now)
	monitor.emitLocked(Event{Type: EventResumed, At: now})
	monitor.emitRefreshLocked(now)
}

// Paused reports whether ticking is suspended.
func (monitor *Monitor) Paused() bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.paused
}

// UpdateConfig applies a new toggle policy and poll interval.
func (monitor *Monitor) UpdateConfig(config model.MonitorConfig) {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}

	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	changed := config.PollInterval != monitor.config.PollInterval
	monitor.config = config
	monitor.registry.SetPolicy(config.Toggle)

	if changed && monitor.running {
		// Replace any period the loop has not picked up yet.
		select {
		case <-monitor.resetCh:
		default:
		}
		monitor.resetCh <- config.PollInterval
	}
}

// Tick scans the process table once and advances every active timer.
// It returns the messages that fired.
func (monitor *Monitor) Tick(now time.Time) []string {
	if monitor.Paused() {
		return nil
	}

	processes, err := monitor.scanner.Scan()

	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	if monitor.paused {
		return nil
	}
	if err != nil {
		monitor.log.Warn("process scan failed", zap.Error(err))
		monitor.emitLocked(Event{Type: EventScanError, Err: err, At: now})
	}

	fired := monitor.registry.Tick(now, processes.Exists)
	for _, message := range fired {
		monitor.log.Info("reminder due", zap.String("message", message))
		monitor.emitLocked(Event{Type: EventNotify, Message: message, At: now})
	}
	monitor.emitRefreshLocked(now)
	return fired
}

// Add validates input and appends a new timer.
func (monitor *Monitor) Add(processName, interval, message string) (model.Timer, error) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	now := monitor.now()
	timer, err := monitor.registry.Add(processName, interval, message, now)
	if err != nil {
		monitor.log.Debug("timer rejected", zap.Error(err))
		return model.Timer{}, err
	}
	monitor.log.Info("timer added",
		zap.String("process", timer.ProcessName),
		zap.Int("interval_minutes", timer.IntervalMinutes),
	)
	monitor.emitRefreshLocked(now)
	return timer, nil
}

// Toggle flips the timer at index. It returns false for an unknown index.
func (monitor *Monitor) Toggle(index int) bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	now := monitor.now()
	if !monitor.registry.Toggle(index, now) {
		return false
	}
	monitor.log.Debug("timer toggled", zap.Int("index", index))
	monitor.emitRefreshLocked(now)
	return true
}

// Delete removes the timer at index. It returns false for an unknown index.
func (monitor *Monitor) Delete(index int) bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	if !monitor.registry.Delete(index) {
		return false
	}
	monitor.log.Debug("timer deleted", zap.Int("index", index))
	monitor.emitRefreshLocked(monitor.now())
	return true
}

// Timers returns a copy of the current timers.
func (monitor *Monitor) Timers() []model.Timer {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.registry.List()
}

// Rows renders the current timers for display.
func (monitor *Monitor) Rows() []Row {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.rowsLocked(monitor.now())
}

// Save writes every timer to the store.
func (monitor *Monitor) Save() error {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	timers := monitor.registry.List()
	if err := monitor.store.Save(timers); err != nil {
		monitor.log.Error("save timers failed", zap.Error(err))
		monitor.emitLocked(Event{Type: EventSaved, Err: err, At: monitor.now()})
		return err
	}
	monitor.log.Info("timers saved", zap.Int("count", len(timers)))
	monitor.emitLocked(Event{Type: EventSaved, Count: len(timers), At: monitor.now()})
	return nil
}

// Load replaces the registry with the stored timers. The registry is
// emptied first and stays empty when the store fails.
func (monitor *Monitor) Load() (LoadResult, error) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()

	now := monitor.now()
	monitor.registry.Replace(nil, now)

	timers, skipped, err := monitor.store.Load()
	if err != nil {
		monitor.log.Error("load timers failed", zap.Error(err))
		monitor.emitLocked(Event{Type: EventLoaded, Err: err, At: now})
		monitor.emitRefreshLocked(now)
		return LoadResult{}, err
	}

	monitor.registry.Replace(timers, now)
	result := LoadResult{Loaded: monitor.registry.Len(), Skipped: skipped}
	if skipped > 0 {
		monitor.log.Warn("skipped malformed timer lines", zap.Int("skipped", skipped))
	}
	monitor.log.Info("timers loaded", zap.Int("count", result.Loaded))
	monitor.emitLocked(Event{Type: EventLoaded, Count: result.Loaded, At: now})
	monitor.emitRefreshLocked(now)
	return result, nil
}

func (monitor *Monitor) run(interval time.Duration, stopCh <-chan struct{}, resetCh <-chan time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case next := <-resetCh:
			ticker.Reset(next)
		case tickTime := <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			monitor.Tick(tickTime)
		}
	}
}

func (monitor *Monitor) rowsLocked(now time.Time) []Row {
	timers := monitor.registry.List()
	rows := make([]Row, 0, len(timers))
	for i, timer := range timers {
		rows = append(rows, Row{
			Index:        i,
			ProcessName:  timer.ProcessName,
			Message:      timer.Message,
			Active:       timer.Active,
			ProcessFound: timer.ProcessFound,
			Text:         registry.Describe(i, timer, now),
		})
	}
	return rows
}

func (monitor *Monitor) emitRefreshLocked(now time.Time) {
	if len(monitor.events) == 0 {
		return
	}
	monitor.emitLocked(Event{
		Type: EventRefresh,
		Rows: monitor.rowsLocked(now),
		At:   now,
	})
}

func (monitor *Monitor) emitLocked(event Event) {
	for _, ch := range monitor.events {
		select {
		case ch <- event:
		default:
		}
	}
}
