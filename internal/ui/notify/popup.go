package notify

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	popupWidth  = float32(350)
	popupHeight = float32(100)
	popupTitle  = "procwatch"
)

// Config defines pop-up behaviour.
type Config struct {
	Duration time.Duration
	// Native sends an OS notification instead of drawing a pop-up window.
	Native bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Popup shows each reminder in its own undecorated window that closes
// itself after the configured duration. Pop-ups never coordinate with
// each other.
type Popup struct {
	mu     sync.Mutex
	app    fyne.App
	config Config
}

// New creates a pop-up surface.
func New(app fyne.App, config Config) *Popup {
	if config.Duration <= 0 {
		config.Duration = 5 * time.Second
	}
	return &Popup{app: app, config: config}
}

// UpdateConfig applies new pop-up settings to later reminders.
func (popup *Popup) UpdateConfig(config Config) {
	if config.Duration <= 0 {
		config.Duration = 5 * time.Second
	}
	popup.mu.Lock()
	popup.config = config
	popup.mu.Unlock()
}

// Show displays message. It is safe to call from any goroutine.
func (popup *Popup) Show(message string) {
	popup.mu.Lock()
	config := popup.config
	popup.mu.Unlock()

	if config.Native {
		popup.app.SendNotification(fyne.NewNotification(popupTitle, message))
		return
	}

	fyne.Do(func() {
		window := popup.newWindow(message)
		window.Show()
		time.AfterFunc(config.Duration, func() {
			fyne.Do(window.Close)
		})
	})
}

func (popup *Popup) newWindow(message string) fyne.Window {
	var window fyne.Window
	if driver, ok := popup.app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	} else {
		window = popup.app.NewWindow(popupTitle)
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	background.StrokeColor = theme.Color(theme.ColorNamePrimary)
	background.StrokeWidth = 2

	label := widget.NewLabelWithStyle(message, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	label.Wrapping = fyne.TextWrapWord

	window.SetContent(container.NewStack(background, container.NewPadded(label)))
	window.Resize(fyne.NewSize(popupWidth, popupHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	return window
}
