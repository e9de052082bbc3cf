package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwatch/internal/core/model"
)

func TestTimersFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), TimersFileName)
	file := NewTimersFile(path)

	original := []model.Timer{
		{ProcessName: "chrome.exe", IntervalMinutes: 30, Message: "Stand up", Active: true, LastNotified: time.Now(), ProcessFound: true},
		{ProcessName: "Code.exe", IntervalMinutes: 5, Message: "Drink, then stretch", Active: false},
		{ProcessName: `odd\name`, IntervalMinutes: 1, Message: "two\nlines", Active: true},
		{ProcessName: "notepad.exe", IntervalMinutes: 2, Message: "line1\r\nline2 in C:\\notes", Active: true},
	}
	require.NoError(t, file.Save(original))

	loaded, skipped, err := file.Load()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].ProcessName, loaded[i].ProcessName)
		assert.Equal(t, original[i].IntervalMinutes, loaded[i].IntervalMinutes)
		assert.Equal(t, original[i].Message, loaded[i].Message)
		assert.Equal(t, original[i].Active, loaded[i].Active)
		assert.True(t, loaded[i].LastNotified.IsZero())
		assert.False(t, loaded[i].ProcessFound)
	}
}

func TestEncodeTimerEscapesCommas(t *testing.T) {
	line := EncodeTimer(model.Timer{ProcessName: "a.exe", IntervalMinutes: 2, Message: "x, y", Active: true})
	assert.Equal(t, `a.exe,2,x\, y,True`, line)
}

func TestDecodeTimersSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"notepad.exe,1,Take a break,True",
		"chrome.exe,abc,msg,True",
		"short,line",
		"zero.exe,0,msg,True",
		"neg.exe,-5,msg,False",
		",5,no name,True",
		"",
		"   ",
		"code.exe,10,Look away,false",
	}, "\n")

	timers, skipped, err := DecodeTimers(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 5, skipped)
	require.Len(t, timers, 2)
	assert.Equal(t, "notepad.exe", timers[0].ProcessName)
	assert.True(t, timers[0].Active)
	assert.Equal(t, "code.exe", timers[1].ProcessName)
	assert.False(t, timers[1].Active)
}

func TestDecodeTimerActiveFlag(t *testing.T) {
	for line, want := range map[string]bool{
		"a.exe,1,m,True":  true,
		"a.exe,1,m,TRUE":  true,
		"a.exe,1,m,true":  true,
		"a.exe,1,m,False": false,
		"a.exe,1,m,yes":   false,
	} {
		timer, ok := DecodeTimer(line)
		require.True(t, ok, line)
		assert.Equal(t, want, timer.Active, line)
	}
}

func TestDecodeTimerLegacyUnescapedCommas(t *testing.T) {
	timer, ok := DecodeTimer("chrome.exe,15,Relax, breathe, blink,True")
	require.True(t, ok)
	assert.Equal(t, "Relax, breathe, blink", timer.Message)
	assert.Equal(t, 15, timer.IntervalMinutes)
	assert.True(t, timer.Active)
}

func TestEncodeTimersWritesHeader(t *testing.T) {
	var builder strings.Builder
	require.NoError(t, EncodeTimers(&builder, []model.Timer{{ProcessName: "a.exe", IntervalMinutes: 1, Message: "m\r\n", Active: true}}))
	assert.Equal(t, FormatHeader+"\na.exe,1,m\\r\\n,True\n", builder.String())
}

func TestDecodeTimerKeepsUnknownEscapes(t *testing.T) {
	timer, ok := DecodeTimer(`a.exe,1,C:\temp\\x\, y\q,True`)
	require.True(t, ok)
	assert.Equal(t, `C:\temp\x, y\q`, timer.Message)
}

func TestDecodeTimersLegacyFileKeepsBackslashes(t *testing.T) {
	input := "notepad.exe,5,Open C:\\notes\\today.txt,True\nchrome.exe,15,Relax, breathe,False\n"

	timers, skipped, err := DecodeTimers(strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, timers, 2)
	assert.Equal(t, `Open C:\notes\today.txt`, timers[0].Message)
	assert.Equal(t, "Relax, breathe", timers[1].Message)

	var builder strings.Builder
	require.NoError(t, EncodeTimers(&builder, timers))
	reloaded, _, err := DecodeTimers(strings.NewReader(builder.String()))
	require.NoError(t, err)
	assert.Equal(t, timers[0].Message, reloaded[0].Message)
}

func TestDecodeTimerRejectsOverflowingInterval(t *testing.T) {
	_, ok := DecodeTimer("a.exe,200000000,msg,True")
	assert.False(t, ok)
	_, ok = DecodeLegacyTimer("a.exe,200000000,msg,True")
	assert.False(t, ok)

	timer, ok := DecodeTimer("a.exe,1440,msg,True")
	require.True(t, ok)
	assert.Equal(t, 1440, timer.IntervalMinutes)
}

func TestDecodeTimersHandlesCRLF(t *testing.T) {
	timers, skipped, err := DecodeTimers(strings.NewReader("a.exe,1,m,True\r\nb.exe,2,n,False\r\n"))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, timers, 2)
	assert.True(t, timers[0].Active)
}

func TestLoadMissingFile(t *testing.T) {
	file := NewTimersFile(filepath.Join(t.TempDir(), "absent.txt"))
	timers, skipped, err := file.Load()
	require.NoError(t, err)
	assert.Empty(t, timers)
	assert.Zero(t, skipped)
}

func TestLoadUnreadablePath(t *testing.T) {
	dir := t.TempDir()
	file := NewTimersFile(dir)
	_, _, err := file.Load()
	assert.Error(t, err)
}

func TestSaveFailureLeavesFileIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TimersFileName)
	require.NoError(t, os.WriteFile(path, []byte("keep.exe,1,keep,True\n"), 0o644))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	broken := NewTimersFile(filepath.Join(blocker, TimersFileName))
	require.Error(t, broken.Save([]model.Timer{{ProcessName: "x", IntervalMinutes: 1, Message: "y"}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep.exe,1,keep,True\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
