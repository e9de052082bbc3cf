package timers

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwatch/internal/core/model"
	"procwatch/internal/core/monitor"
	"procwatch/internal/core/registry"
)

type fakeCommands struct {
	added   [][3]string
	addErr  error
	toggled []int
	deleted []int
	saves   int
	loads   int
	rows    []monitor.Row
}

func (commands *fakeCommands) Add(processName, interval, message string) (model.Timer, error) {
	commands.added = append(commands.added, [3]string{processName, interval, message})
	return model.Timer{}, commands.addErr
}

func (commands *fakeCommands) Toggle(index int) bool {
	commands.toggled = append(commands.toggled, index)
	return true
}

func (commands *fakeCommands) Delete(index int) bool {
	commands.deleted = append(commands.deleted, index)
	return true
}

func (commands *fakeCommands) Save() error {
	commands.saves++
	return nil
}

func (commands *fakeCommands) Load() (monitor.LoadResult, error) {
	commands.loads++
	return monitor.LoadResult{}, nil
}

func (commands *fakeCommands) Rows() []monitor.Row {
	return commands.rows
}

func TestAddClearsEntriesOnSuccess(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	commands := &fakeCommands{}
	window := New(app, commands, "/tmp/timers.txt")

	test.Type(window.processEntry, "notepad.exe")
	test.Type(window.intervalEntry, "1")
	test.Type(window.messageEntry, "Take a break")
	window.handleAdd()

	require.Len(t, commands.added, 1)
	assert.Equal(t, [3]string{"notepad.exe", "1", "Take a break"}, commands.added[0])
	assert.Empty(t, window.processEntry.Text)
	assert.Empty(t, window.intervalEntry.Text)
	assert.Empty(t, window.messageEntry.Text)
}

func TestAddKeepsEntriesOnValidationError(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	commands := &fakeCommands{addErr: &registry.ValidationError{Field: "interval", Err: registry.ErrInvalidInterval}}
	window := New(app, commands, "/tmp/timers.txt")

	test.Type(window.intervalEntry, "abc")
	window.handleAdd()

	assert.Len(t, commands.added, 1)
	assert.Equal(t, "abc", window.intervalEntry.Text)
}

func TestSelectionEnablesManagementButtons(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	commands := &fakeCommands{rows: []monitor.Row{
		{Index: 0, Text: "1. a.exe - msg - 1 min. (Monitoring...)"},
		{Index: 1, Text: "2. b.exe - msg - 2 min. (Inactive)"},
	}}
	window := New(app, commands, "/tmp/timers.txt")

	assert.True(t, window.toggleButton.Disabled())
	assert.True(t, window.deleteButton.Disabled())

	window.list.Select(1)
	assert.False(t, window.toggleButton.Disabled())

	test.Tap(window.toggleButton)
	assert.Equal(t, []int{1}, commands.toggled)

	test.Tap(window.deleteButton)
	assert.Equal(t, []int{1}, commands.deleted)
	assert.True(t, window.deleteButton.Disabled())
}

func TestSetRowsDropsStaleSelection(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	commands := &fakeCommands{rows: []monitor.Row{{Text: "1"}, {Text: "2"}}}
	window := New(app, commands, "/tmp/timers.txt")
	window.list.Select(1)

	window.SetRows([]monitor.Row{{Text: "1"}})
	assert.Equal(t, -1, window.selected)
	assert.True(t, window.toggleButton.Disabled())
}
