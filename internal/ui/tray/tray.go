package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"procwatch/internal/core/monitor"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimers  func()
	OnPreferences func()
	OnTogglePause func()
	OnReload      func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause monitoring", invoke(callbacks.OnTogglePause))

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status line from the current timer rows.
func (manager *Manager) SetStatus(rows []monitor.Row) {
	manager.statusLabel = Summary(rows)
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume monitoring"
	} else {
		manager.pauseItem.Label = "Pause monitoring"
	}
	manager.refreshStatus()
}

// Summary describes how many timers are active and how many see their process.
func Summary(rows []monitor.Row) string {
	active, running := 0, 0
	for _, row := range rows {
		if !row.Active {
			continue
		}
		active++
		if row.ProcessFound {
			running++
		}
	}
	return fmt.Sprintf("%d active, %d running", active, running)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("procwatch",
		manager.statusItem,
		fyne.NewMenuItem("Show timers", invoke(manager.callbacks.OnShowTimers)),
		fyne.NewMenuItem("Preferences", invoke(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		fyne.NewMenuItem("Reload timers", invoke(manager.callbacks.OnReload)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(manager.callbacks.OnQuit)),
	))
}

func invoke(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}
