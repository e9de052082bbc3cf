package desktop

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynedesktop "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"procwatch/internal/core/monitor"
	"procwatch/internal/platform"
	"procwatch/internal/storage"
	"procwatch/internal/ui/notify"
	"procwatch/internal/ui/preferences"
	"procwatch/internal/ui/timers"
	"procwatch/internal/ui/tray"
)

const appID = "com.procwatch.app"

// Options holds everything the desktop front end needs.
type Options struct {
	AppName    string
	ConfigDir  string
	Settings   preferences.Settings
	Monitor    *monitor.Monitor
	TimersPath string
	Service    platform.Service
	Log        *zap.Logger
}

// Run starts the graphical front end and blocks until the user quits.
// A second launch asks the running instance to show its window and returns.
func Run(options Options) error {
	log := options.Log
	if log == nil {
		log = zap.NewNop()
	}

	guard, err := platform.AcquireSingleInstance(options.AppName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Info("another instance is running, activating it")
		return platform.ActivateRunning(options.AppName)
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	settings := options.Settings
	mon := options.Monitor

	popup := notify.New(fyneApp, popupConfig(settings))
	timersWindow := timers.New(fyneApp, mon, options.TimersPath)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		previous := settings
		settings = updated
		mon.UpdateConfig(settings.MonitorConfig())
		popup.UpdateConfig(popupConfig(settings))
		if err := storage.SaveSettings(options.ConfigDir, settings); err != nil {
			log.Error("save settings failed", zap.Error(err))
		}
		if previous.Autostart != settings.Autostart {
			if err := platform.SyncAutostart(options.Service, options.AppName, settings.Autostart); err != nil {
				log.Error("update autostart failed", zap.Error(err))
			}
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(fynedesktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowTimers:  timersWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnTogglePause: func() {
				if mon.Paused() {
					mon.Resume()
				} else {
					mon.Pause()
				}
			},
			OnReload: func() {
				if _, err := mon.Load(); err != nil {
					log.Error("reload timers failed", zap.Error(err))
				}
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
	} else {
		log.Warn("system tray unsupported on this platform")
	}

	events := mon.Subscribe(64)
	go func() {
		for event := range events {
			handleEvent(event, popup, timersWindow, trayManager)
		}
	}()

	if settings.LoadOnStartup {
		if _, err := mon.Load(); err != nil {
			log.Error("load timers on startup failed", zap.Error(err))
		}
	}

	go guard.Serve(func() {
		fyne.Do(timersWindow.Show)
	})

	mon.Start()
	defer mon.Stop()

	timersWindow.Show()
	fyneApp.Run()
	return nil
}

func handleEvent(event monitor.Event, popup notify.Sink, timersWindow *timers.Window, trayManager *tray.Manager) {
	switch event.Type {
	case monitor.EventNotify:
		popup.Show(event.Message)
	case monitor.EventRefresh:
		rows := event.Rows
		fyne.Do(func() {
			timersWindow.SetRows(rows)
			if trayManager != nil {
				trayManager.SetStatus(rows)
			}
		})
	case monitor.EventPaused, monitor.EventResumed:
		if trayManager == nil {
			return
		}
		paused := event.Type == monitor.EventPaused
		fyne.Do(func() {
			trayManager.SetPaused(paused)
		})
	}
}

func popupConfig(settings preferences.Settings) notify.Config {
	return notify.Config{
		Duration: settings.NotificationDuration,
		Native:   settings.NativeNotifications,
	}
}
