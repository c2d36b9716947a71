package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for optset
	EnvConfigDir = "OPTSET_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for optset
	EnvStateDir = "OPTSET_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for optset-specific files
	AppDirName = "optset"

	// ConfigFileName is the application configuration file
	ConfigFileName = "config.toml"

	// SchemaFileName is the default schema document
	SchemaFileName = "schema.toml"

	// SettingsFileName is the default JSON backing file
	SettingsFileName = "settings.json"

	// LogFileName is the log file written under the state directory
	LogFileName = "optset.log"
)

// ConfigDir returns the optset config directory
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the optset state directory
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the default application config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SchemaFile returns the default schema document path
func SchemaFile() string {
	return filepath.Join(ConfigDir(), SchemaFileName)
}

// SettingsFile returns the default settings backing file path
func SettingsFile() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if strings.HasPrefix(path, "~/") {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
