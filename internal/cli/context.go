package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"procwatch/internal/core/monitor"
	"procwatch/internal/core/registry"
	"procwatch/internal/platform"
	"procwatch/internal/storage"
	"procwatch/internal/ui/preferences"
)

// Context carries resolved configuration into every command.
type Context struct {
	AppName   string
	ConfigDir string
	Settings  preferences.Settings
	Store     *storage.TimersFile
	Service   platform.Service
	Scanner   platform.ProcessScanner
	Log       *zap.Logger
	Out       io.Writer
}

// NewMonitor builds an empty monitor backed by the timers file.
func (c *Context) NewMonitor() *monitor.Monitor {
	config := c.Settings.MonitorConfig()
	scanner := c.Scanner
	if scanner == nil {
		scanner = platform.NewProcessScanner()
	}
	return monitor.New(config, registry.New(config.Toggle), scanner, c.Store, c.Log)
}

func (c *Context) loadMonitor() (*monitor.Monitor, error) {
	mon := c.NewMonitor()
	if _, err := mon.Load(); err != nil {
		return nil, fmt.Errorf("failed to load timers from %s: %w", c.Store.Path(), err)
	}
	return mon, nil
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
