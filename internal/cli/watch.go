package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procwatch/internal/core/monitor"
	"procwatch/internal/ui/notify"
)

// WatchCmd runs the monitor without a window and prints reminders.
type WatchCmd struct {
	For time.Duration `help:"Stop after this long. Zero runs until interrupted." default:"0s"`
}

func (c *WatchCmd) Run(ctx *Context) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.For > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.For)
		defer cancel()
	}

	mon, err := ctx.loadMonitor()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Watching %d timers from %s. Press Ctrl+C to stop.\n", len(mon.Timers()), ctx.Store.Path())

	sink := notify.NewWriterSink(ctx.out(), ctx.Log)
	events := mon.Subscribe(64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			if event.Type == monitor.EventNotify {
				sink.Show(event.Message)
			}
		}
	}()

	mon.Start()
	<-runCtx.Done()
	mon.Stop()
	<-done
	return nil
}
