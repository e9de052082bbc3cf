package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sink displays reminder messages.
type Sink interface {
	Show(message string)
}

// WriterSink prints reminders as timestamped lines for headless use.
type WriterSink struct {
	mu     sync.Mutex
	writer io.Writer
	log    *zap.Logger
	now    func() time.Time
}

// NewWriterSink returns a sink writing to writer and logging each reminder.
func NewWriterSink(writer io.Writer, log *zap.Logger) *WriterSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &WriterSink{writer: writer, log: log, now: time.Now}
}

// Show writes the message.
func (sink *WriterSink) Show(message string) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if _, err := fmt.Fprintf(sink.writer, "[%s] %s\n", sink.now().Format("15:04:05"), message); err != nil {
		sink.log.Warn("write reminder failed", zap.Error(err))
	}
	sink.log.Info("reminder shown", zap.String("message", message))
}
