// Package paths provides centralized path handling for uvw.
// It resolves the registry directory, the XDG config and state locations,
// and expands ~ in user supplied paths.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/uvw/pkg/errors"
)

// Environment variable names
const (
	// EnvWorkonHome overrides the registry directory
	EnvWorkonHome = "WORKON_HOME"

	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "UVW_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// XDG variables are read at call time, after adrg/xdg has initialized,
	// so tests and wrappers can redirect them.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvXDGStateHome  = "XDG_STATE_HOME"
)

// Default directories and files
const (
	// DefaultWorkonHome is where links live when nothing else is configured
	DefaultWorkonHome = "~/.virtualenvs"

	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "uvw"

	// ConfigFileName is the name of the user config file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "uvw.log"
)

// WorkonHome returns the absolute registry directory. An explicit value
// wins over $WORKON_HOME, which wins over DefaultWorkonHome.
// The directory is not required to exist.
func WorkonHome(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = os.Getenv(EnvWorkonHome)
	}
	if dir == "" {
		dir = DefaultWorkonHome
	}
	return Absolute(dir)
}

// Absolute expands ~ and makes path absolute without resolving symlinks.
func Absolute(path string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot make %q absolute", path)
	}
	return abs, nil
}

// ConfigFilePath returns $UVW_CONFIG if set, else the XDG config location.
func ConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(configHome(), AppDirName, ConfigFileName)
}

// LogFilePath returns the path to the uvw log file
// Respects XDG_STATE_HOME if set
func LogFilePath() string {
	stateHome := os.Getenv(EnvXDGStateHome)
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return LogFileName
	}
	return filepath.Join(stateHome, AppDirName, LogFileName)
}

func configHome() string {
	if dir := os.Getenv(EnvXDGConfigHome); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~\
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
