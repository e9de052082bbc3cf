package timers

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"procwatch/internal/core/model"
	"procwatch/internal/core/monitor"
)

// Commands is the subset of the monitor the window drives.
type Commands interface {
	Add(processName, interval, message string) (model.Timer, error)
	Toggle(index int) bool
	Delete(index int) bool
	Save() error
	Load() (monitor.LoadResult, error)
	Rows() []monitor.Row
}

// Window lists timers and forwards button presses to the monitor.
type Window struct {
	window     fyne.Window
	commands   Commands
	timersPath string

	processEntry  *widget.Entry
	intervalEntry *widget.Entry
	messageEntry  *widget.Entry
	list          *widget.List
	toggleButton  *widget.Button
	deleteButton  *widget.Button

	rows     []monitor.Row
	selected int
}

// New creates the timers window. Closing it only hides it.
func New(app fyne.App, commands Commands, timersPath string) *Window {
	window := app.NewWindow("procwatch")

	timersWindow := &Window{
		window:        window,
		commands:      commands,
		timersPath:    timersPath,
		processEntry:  widget.NewEntry(),
		intervalEntry: widget.NewEntry(),
		messageEntry:  widget.NewEntry(),
		selected:      -1,
	}
	timersWindow.processEntry.SetPlaceHolder("chrome.exe")
	timersWindow.intervalEntry.SetPlaceHolder("30")
	timersWindow.messageEntry.SetPlaceHolder("Time to stretch")

	timersWindow.list = widget.NewList(
		func() int { return len(timersWindow.rows) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(timersWindow.rows) {
				item.(*widget.Label).SetText(timersWindow.rows[id].Text)
			}
		},
	)
	timersWindow.list.OnSelected = func(id widget.ListItemID) {
		timersWindow.selected = id
		timersWindow.updateButtons()
	}
	timersWindow.list.OnUnselected = func(widget.ListItemID) {
		timersWindow.selected = -1
		timersWindow.updateButtons()
	}

	addButton := widget.NewButtonWithIcon("Add Timer", theme.ContentAddIcon(), timersWindow.handleAdd)
	addButton.Importance = widget.HighImportance
	saveButton := widget.NewButtonWithIcon("Save Timers", theme.DocumentSaveIcon(), timersWindow.handleSave)
	loadButton := widget.NewButtonWithIcon("Load Timers", theme.FolderOpenIcon(), timersWindow.handleLoad)
	timersWindow.toggleButton = widget.NewButton("Toggle Status", timersWindow.handleToggle)
	timersWindow.deleteButton = widget.NewButtonWithIcon("Delete Selected", theme.DeleteIcon(), timersWindow.handleDelete)
	timersWindow.deleteButton.Importance = widget.DangerImportance

	form := widget.NewForm(
		widget.NewFormItem("Process name", timersWindow.processEntry),
		widget.NewFormItem("Interval (minutes)", timersWindow.intervalEntry),
		widget.NewFormItem("Message", timersWindow.messageEntry),
	)

	top := container.NewVBox(
		widget.NewLabelWithStyle("Process Timer Setup", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		form,
		container.NewGridWithColumns(3, addButton, saveButton, loadButton),
		widget.NewLabelWithStyle("Timers", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	bottom := container.NewHBox(timersWindow.toggleButton, layout.NewSpacer(), timersWindow.deleteButton)

	window.SetContent(container.NewBorder(top, bottom, nil, nil, timersWindow.list))
	window.Resize(fyne.NewSize(520, 600))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	timersWindow.SetRows(commands.Rows())
	return timersWindow
}

// Show displays the window.
func (timersWindow *Window) Show() {
	timersWindow.window.Show()
	timersWindow.window.RequestFocus()
}

// SetRows replaces the listed timers, keeping the selection when it is
// still in range. Call it on the fyne goroutine.
func (timersWindow *Window) SetRows(rows []monitor.Row) {
	timersWindow.rows = rows
	if timersWindow.selected >= len(rows) {
		timersWindow.list.UnselectAll()
		timersWindow.selected = -1
	}
	timersWindow.list.Refresh()
	timersWindow.updateButtons()
}

func (timersWindow *Window) handleAdd() {
	_, err := timersWindow.commands.Add(
		timersWindow.processEntry.Text,
		timersWindow.intervalEntry.Text,
		timersWindow.messageEntry.Text,
	)
	if err != nil {
		dialog.ShowError(fmt.Errorf("input error: %w", err), timersWindow.window)
		return
	}
	timersWindow.processEntry.SetText("")
	timersWindow.intervalEntry.SetText("")
	timersWindow.messageEntry.SetText("")
}

func (timersWindow *Window) handleSave() {
	if err := timersWindow.commands.Save(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save timers: %w", err), timersWindow.window)
		return
	}
	dialog.ShowInformation("Success", "Timers saved to "+timersWindow.timersPath, timersWindow.window)
}

func (timersWindow *Window) handleLoad() {
	timersWindow.list.UnselectAll()
	result, err := timersWindow.commands.Load()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load timers: %w", err), timersWindow.window)
		return
	}
	if result.Loaded == 0 && result.Skipped == 0 {
		dialog.ShowInformation("Info", "No saved timers found.", timersWindow.window)
		return
	}
	message := fmt.Sprintf("Loaded %d timers from %s", result.Loaded, timersWindow.timersPath)
	if result.Skipped > 0 {
		message += fmt.Sprintf(" (%d malformed lines skipped)", result.Skipped)
	}
	dialog.ShowInformation("Success", message, timersWindow.window)
}

func (timersWindow *Window) handleToggle() {
	if timersWindow.selected < 0 {
		return
	}
	timersWindow.commands.Toggle(timersWindow.selected)
}

func (timersWindow *Window) handleDelete() {
	if timersWindow.selected < 0 {
		return
	}
	index := timersWindow.selected
	timersWindow.list.UnselectAll()
	timersWindow.commands.Delete(index)
}

func (timersWindow *Window) updateButtons() {
	if timersWindow.selected >= 0 {
		timersWindow.toggleButton.Enable()
		timersWindow.deleteButton.Enable()
		return
	}
	timersWindow.toggleButton.Disable()
	timersWindow.deleteButton.Disable()
}
