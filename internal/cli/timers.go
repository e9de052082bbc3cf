package cli

import (
	"fmt"
	"time"
)

type AddCmd struct {
	Process  string `arg:"" help:"Process name to watch, e.g. notepad.exe."`
	Interval string `arg:"" help:"Reminder interval in minutes."`
	Message  string `arg:"" help:"Reminder text."`
}

func (c *AddCmd) Run(ctx *Context) error {
	mon, err := ctx.loadMonitor()
	if err != nil {
		return err
	}

	timer, err := mon.Add(c.Process, c.Interval, c.Message)
	if err != nil {
		return fmt.Errorf("invalid timer: %w", err)
	}
	if err := mon.Save(); err != nil {
		return fmt.Errorf("failed to save timers: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Added timer: %s every %d min.\n", timer.ProcessName, timer.IntervalMinutes)
	return nil
}

type ListCmd struct {
	Scan bool `help:"Scan running processes once before listing."`
}

func (c *ListCmd) Run(ctx *Context) error {
	mon, err := ctx.loadMonitor()
	if err != nil {
		return err
	}
	if c.Scan {
		mon.Tick(time.Now())
	}

	rows := mon.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(ctx.out(), "No timers.")
		return nil
	}
	for _, row := range rows {
		fmt.Fprintln(ctx.out(), row.Text)
	}
	return nil
}

type ToggleCmd struct {
	Index int `arg:"" help:"Timer number as shown by list."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	mon, err := ctx.loadMonitor()
	if err != nil {
		return err
	}
	if !mon.Toggle(c.Index - 1) {
		return fmt.Errorf("no timer #%d", c.Index)
	}
	if err := mon.Save(); err != nil {
		return fmt.Errorf("failed to save timers: %w", err)
	}

	fmt.Fprintln(ctx.out(), mon.Rows()[c.Index-1].Text)
	return nil
}

type DeleteCmd struct {
	Index int `arg:"" help:"Timer number as shown by list."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	mon, err := ctx.loadMonitor()
	if err != nil {
		return err
	}

	rows := mon.Rows()
	if c.Index < 1 || c.Index > len(rows) {
		return fmt.Errorf("no timer #%d", c.Index)
	}
	deleted := rows[c.Index-1]
	mon.Delete(c.Index - 1)
	if err := mon.Save(); err != nil {
		return fmt.Errorf("failed to save timers: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Deleted timer: %s - %s\n", deleted.ProcessName, deleted.Message)
	return nil
}
