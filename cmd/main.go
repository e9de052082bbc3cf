package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"procwatch/internal/cli"
	"procwatch/internal/config"
	"procwatch/internal/logger"
	"procwatch/internal/platform"
	"procwatch/internal/storage"
)

const appName = "procwatch"

var CLI struct {
	TimersFile string `help:"Timers file path. Defaults to timers.txt in the config directory." type:"path"`
	ConfigDir  string `help:"Directory holding settings, timers and logs." type:"path"`
	LogLevel   string `help:"Log level (debug, info, warn, error). Overrides PROCWATCH_LOG_LEVEL."`

	GUI       cli.GUICmd       `cmd:"" name:"gui" help:"Open the timers window and tray icon." default:"1"`
	Watch     cli.WatchCmd     `cmd:"" help:"Monitor processes without a window and print reminders."`
	Add       cli.AddCmd       `cmd:"" help:"Add a timer and save it."`
	List      cli.ListCmd      `cmd:"" help:"List saved timers."`
	Toggle    cli.ToggleCmd    `cmd:"" help:"Activate or deactivate a saved timer."`
	Delete    cli.DeleteCmd    `cmd:"" help:"Delete a saved timer."`
	Autostart cli.AutostartCmd `cmd:"" help:"Enable or disable start at login."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(appName),
		kong.Description("Process-triggered reminder timers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	service := platform.NewService()
	configDir := firstNonEmpty(CLI.ConfigDir, env.ConfigDir)
	if configDir == "" {
		configDir, err = platform.AppConfigDir(service, appName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := logger.New(logger.Options{
		Level:   firstNonEmpty(CLI.LogLevel, env.LogLevel),
		Dir:     filepath.Join(configDir, "logs"),
		Console: env.LogConsole,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	settings, err := storage.LoadSettings(configDir)
	if err != nil {
		log.Warn("using default settings", zap.Error(err))
	}

	timersPath := firstNonEmpty(CLI.TimersFile, env.TimersFile, settings.TimersFile)
	if timersPath == "" {
		timersPath = filepath.Join(configDir, storage.TimersFileName)
	}
	log.Debug("resolved paths",
		zap.String("config_dir", configDir),
		zap.String("timers_file", timersPath),
	)

	appCtx := &cli.Context{
		AppName:   appName,
		ConfigDir: configDir,
		Settings:  settings,
		Store:     storage.NewTimersFile(timersPath),
		Service:   service,
		Log:       log,
		Out:       os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		log.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		_ = log.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
