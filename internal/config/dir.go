// Package config resolves, loads and stores the ukato configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Midas1080/ukato/internal/pathutil"
)

// EnvConfigHome points ukato at a config directory of its own.
const EnvConfigHome = "UKATO_CONFIG_HOME"

const appName = "ukato"

// Dir returns the directory holding config.yaml and the env file:
//   - $UKATO_CONFIG_HOME, with a leading ~ expanded
//   - $XDG_CONFIG_HOME/ukato when XDG_CONFIG_HOME is absolute; relative
//     values are invalid under the XDG spec and skipped
//   - %AppData%/ukato on Windows
//   - ~/.config/ukato otherwise, macOS included
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		if expanded, err := pathutil.Expand(dir); err == nil {
			return expanded
		}
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FilePath returns the path of config.yaml inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, "config.yaml")
}

// EnvFilePath returns the path of the optional override file inside dir.
func EnvFilePath(dir string) string {
	return filepath.Join(dir, "env")
}
