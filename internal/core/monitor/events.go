package monitor

import "time"

// EventType defines the type of monitor event.
type EventType string

const (
	EventNotify    EventType = "notify"
	EventRefresh   EventType = "refresh"
	EventScanError EventType = "scan_error"
	EventLoaded    EventType = "loaded"
	EventSaved     EventType = "saved"
	EventPaused    EventType = "paused"
	EventResumed   EventType = "resumed"
)

// Row is a rendered timer line for list views.
type Row struct {
	Index        int
	ProcessName  string
	Message      string
	Active       bool
	ProcessFound bool
	Text         string
}

// Event represents a monitor update for observers.
type Event struct {
	Type    EventType
	Message string
	Rows    []Row
	Count   int
	Err     error
	At      time.Time
}
