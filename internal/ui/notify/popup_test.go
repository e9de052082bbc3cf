package notify

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowCount(app fyne.App) int {
	return len(app.Driver().AllWindows())
}

func popupText(t *testing.T, window fyne.Window) string {
	t.Helper()
	stack, ok := window.Content().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, stack.Objects, 2)
	padded, ok := stack.Objects[1].(*fyne.Container)
	require.True(t, ok)
	label, ok := padded.Objects[0].(*widget.Label)
	require.True(t, ok)
	return label.Text
}

func TestNewDefaultsDuration(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	popup := New(app, Config{})
	assert.Equal(t, 5*time.Second, popup.config.Duration)

	popup.UpdateConfig(Config{Duration: -time.Second, Native: true})
	assert.Equal(t, 5*time.Second, popup.config.Duration)
	assert.True(t, popup.config.Native)
}

func TestPopupsCloseAfterDuration(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	popup := New(app, Config{Duration: 50 * time.Millisecond})
	popup.Show("first")
	popup.Show("second")

	windows := app.Driver().AllWindows()
	require.Len(t, windows, 2)
	assert.Equal(t, "first", popupText(t, windows[0]))
	assert.Equal(t, "second", popupText(t, windows[1]))

	assert.Eventually(t, func() bool { return windowCount(app) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPopupsCloseIndependently(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	popup := New(app, Config{Duration: 30 * time.Millisecond})
	popup.Show("short")
	popup.UpdateConfig(Config{Duration: time.Minute})
	popup.Show("long")

	assert.Eventually(t, func() bool { return windowCount(app) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "long", popupText(t, app.Driver().AllWindows()[0]))
}

func TestNativePopupSendsNotification(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	popup := New(app, Config{Native: true})
	test.AssertNotificationSent(t, fyne.NewNotification("procwatch", "Stretch"), func() {
		popup.Show("Stretch")
	})
	assert.Zero(t, windowCount(app))
}
