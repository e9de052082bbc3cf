//go:build !linux && !windows && !darwin

package platform

import "path/filepath"

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := validateAutostartArgs("enable", appName, execPath, true); err != nil {
		return err
	}
	return ErrAutostartUnsupported
}

func (service *platformService) DisableAutostart(appName string) error {
	if err := validateAutostartArgs("disable", appName, "", false); err != nil {
		return err
	}
	return ErrAutostartUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
