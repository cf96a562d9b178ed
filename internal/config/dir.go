// Package config persists the small amount of global daybook state:
// where the config file lives and which journal directory commands
// operate on.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory daybook claims under the platform
// config root.
const appDirName = "daybook"

// Dir locates the daybook config directory. DAYBOOK_CONFIG_HOME wins
// when set. XDG_CONFIG_HOME is honored on every platform so shared
// dotfiles behave the same everywhere. Windows falls back to
// %AppData%, everything else to ~/.config.
func Dir() string {
	if override := os.Getenv("DAYBOOK_CONFIG_HOME"); override != "" {
		return override
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDirName)
}
