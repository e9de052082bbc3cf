package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	pollEntry     *widget.Entry
	durationEntry *widget.Entry
	resetCheck    *widget.Check
	loadCheck     *widget.Check
	autostart     *widget.Check
	native        *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("procwatch Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		pollEntry:     widget.NewEntry(),
		durationEntry: widget.NewEntry(),
		resetCheck:    widget.NewCheck("Restart countdown when a timer is deactivated", nil),
		loadCheck:     widget.NewCheck("Load saved timers on startup", nil),
		autostart:     widget.NewCheck("Start procwatch at login", nil),
		native:        widget.NewCheck("Use system notifications", nil),
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Check processes every"), prefs.pollEntry, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Show reminders for"), prefs.durationEntry, widget.NewLabel("sec")),
		prefs.resetCheck,
		prefs.loadCheck,
		prefs.native,
		prefs.autostart,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 320))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.pollEntry.SetText(strconv.Itoa(int(settings.PollInterval / time.Second)))
	prefs.durationEntry.SetText(strconv.Itoa(int(settings.NotificationDuration / time.Second)))
	prefs.resetCheck.SetChecked(settings.ResetOnDeactivate)
	prefs.loadCheck.SetChecked(settings.LoadOnStartup)
	prefs.autostart.SetChecked(settings.Autostart)
	prefs.native.SetChecked(settings.NativeNotifications)
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings
	if seconds, ok := parsePositiveInt(prefs.pollEntry.Text); ok {
		settings.PollInterval = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.durationEntry.Text); ok {
		settings.NotificationDuration = time.Duration(seconds) * time.Second
	}
	settings.ResetOnDeactivate = prefs.resetCheck.Checked
	settings.LoadOnStartup = prefs.loadCheck.Checked
	settings.Autostart = prefs.autostart.Checked
	settings.NativeNotifications = prefs.native.Checked
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
