//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := validateAutostartArgs("enable", appName, execPath, true); err != nil {
		return err
	}
	value := `"` + strings.Trim(execPath, `"`) + `"`
	return runReg("enable", "add", runKey, "/v", appName, "/t", "REG_SZ", "/d", value, "/f")
}

func (service *platformService) DisableAutostart(appName string) error {
	if err := validateAutostartArgs("disable", appName, "", false); err != nil {
		return err
	}
	return runReg("disable", "delete", runKey, "/v", appName, "/f")
}

func runReg(action string, args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s autostart: reg %s failed: %w: %s", action, args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}
