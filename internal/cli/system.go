package cli

import (
	"fmt"

	"procwatch/internal/platform"
	"procwatch/internal/storage"
	"procwatch/internal/ui/desktop"
)

// GUICmd launches the desktop front end.
type GUICmd struct{}

func (c *GUICmd) Run(ctx *Context) error {
	return desktop.Run(desktop.Options{
		AppName:    ctx.AppName,
		ConfigDir:  ctx.ConfigDir,
		Settings:   ctx.Settings,
		Monitor:    ctx.NewMonitor(),
		TimersPath: ctx.Store.Path(),
		Service:    ctx.Service,
		Log:        ctx.Log,
	})
}

type AutostartCmd struct {
	Action string `arg:"" enum:"enable,disable" help:"enable or disable start at login."`
}

func (c *AutostartCmd) Run(ctx *Context) error {
	enabled := c.Action == "enable"
	if err := platform.SyncAutostart(ctx.Service, ctx.AppName, enabled); err != nil {
		return fmt.Errorf("failed to %s autostart: %w", c.Action, err)
	}

	ctx.Settings.Autostart = enabled
	if err := storage.SaveSettings(ctx.ConfigDir, ctx.Settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(ctx.out(), "Autostart %sd.\n", c.Action)
	return nil
}
