package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"procwatch/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the name of the YAML preferences file.
const SettingsFileName = "settings.yaml"

const (
	maxPollIntervalSeconds = 60
	maxNotificationSeconds = 60
)

type yamlSettings struct {
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	NotificationSeconds int    `yaml:"notification_seconds"`
	ResetOnDeactivate   *bool  `yaml:"reset_on_deactivate,omitempty"`
	LoadOnStartup       *bool  `yaml:"load_on_startup,omitempty"`
	Autostart           bool   `yaml:"autostart"`
	NativeNotifications bool   `yaml:"native_notifications"`
	TimersFile          string `yaml:"timers_file,omitempty"`
}

// LoadSettings reads user preferences from YAML in configDir.
// If the file does not exist, default settings are returned.
func LoadSettings(configDir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(configDir, SettingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in configDir.
func SaveSettings(configDir string, settings preferences.Settings) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	resetOnDeactivate := settings.ResetOnDeactivate
	loadOnStartup := settings.LoadOnStartup
	fileData := yamlSettings{
		PollIntervalSeconds: int(settings.PollInterval / time.Second),
		NotificationSeconds: int(settings.NotificationDuration / time.Second),
		ResetOnDeactivate:   &resetOnDeactivate,
		LoadOnStartup:       &loadOnStartup,
		Autostart:           settings.Autostart,
		NativeNotifications: settings.NativeNotifications,
		TimersFile:          settings.TimersFile,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, SettingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.PollIntervalSeconds > 0 && fileData.PollIntervalSeconds <= maxPollIntervalSeconds {
		settings.PollInterval = time.Duration(fileData.PollIntervalSeconds) * time.Second
	}
	if fileData.NotificationSeconds > 0 && fileData.NotificationSeconds <= maxNotificationSeconds {
		settings.NotificationDuration = time.Duration(fileData.NotificationSeconds) * time.Second
	}
	if fileData.ResetOnDeactivate != nil {
		settings.ResetOnDeactivate = *fileData.ResetOnDeactivate
	}
	if fileData.LoadOnStartup != nil {
		settings.LoadOnStartup = *fileData.LoadOnStartup
	}

	settings.Autostart = fileData.Autostart
	settings.NativeNotifications = fileData.NativeNotifications
	settings.TimersFile = fileData.TimersFile
}
