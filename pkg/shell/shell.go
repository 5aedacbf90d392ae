// Package shell provides the shell functions that let `uvw activate` and
// `uvw cd` change the state of the calling shell.
package shell

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/arthur-debert/uvw/pkg/errors"
)

// EnvShellConfig is exported by the integration once it is loaded.
const EnvShellConfig = "_UVW_SHELL_CONFIG"

// Shell names
const (
	Bash = "bash"
	Zsh  = "zsh"
	Fish = "fish"
)

//go:embed scripts/uvw.sh
var posixScript string

//go:embed scripts/uvw.fish
var fishScript string

// Config returns the integration script for shell. An empty shell means
// bash.
func Config(shell string) (string, error) {
	switch shell {
	case "", Bash, Zsh, "sh":
		return posixScript, nil
	case Fish:
		return fishScript, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell).
			WithDetail("supported", Supported())
	}
}

// Supported lists the shells Config understands.
func Supported() []string {
	return []string{Bash, Zsh, Fish}
}

// Active reports whether the integration is loaded in the calling shell.
func Active() bool {
	return os.Getenv(EnvShellConfig) != ""
}

// Detect guesses the user's shell from $SHELL, defaulting to bash.
func Detect() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case Fish:
		return Fish
	case Zsh:
		return Zsh
	default:
		return Bash
	}
}
