package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "PROCWATCH"

// Config holds process-level overrides loaded from environment variables.
type Config struct {
	ConfigDir  string `envconfig:"CONFIG_DIR"`                // defaults to <user config dir>/procwatch
	TimersFile string `envconfig:"TIMERS_FILE"`               // overrides settings.yaml timers_file
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`  // debug|info|warn|error
	LogConsole bool   `envconfig:"LOG_CONSOLE" default:"false"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
