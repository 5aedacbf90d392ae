// Package runner executes external tools (uv, jupyter) on behalf of uvw.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"

	uvwerrors "github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/logging"
)

// Environment variables set for every command run inside an environment.
const (
	EnvVirtualEnv           = "VIRTUAL_ENV"
	EnvUVProjectEnvironment = "UV_PROJECT_ENVIRONMENT"
)

// Command is a single external invocation.
type Command struct {
	Name string
	Args []string
	// Env is added on top of the current process environment
	Env map[string]string
}

// Argv returns the name followed by the arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command the way a user would type it, env first.
func (c Command) String() string {
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, k+"="+shellquote.Join(c.Env[k]))
	}
	parts = append(parts, shellquote.Join(c.Argv()...))
	return strings.Join(parts, " ")
}

// UV builds `uv run -p <venv> --no-project <args...>` with the environment
// variables pointing at venv.
func UV(uvExe, venvPath string, args ...string) Command {
	if uvExe == "" {
		uvExe = "uv"
	}
	return Command{
		Name: uvExe,
		Args: append([]string{"run", "-p", venvPath, "--no-project"}, args...),
		Env: map[string]string{
			EnvVirtualEnv:           venvPath,
			EnvUVProjectEnvironment: venvPath,
		},
	}
}

// Runner runs commands. Run streams output, Output captures stdout.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	Output(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger zerolog.Logger
}

// NewExecRunner creates a runner wired to the process standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("runner"),
	}
}

func (r *ExecRunner) command(ctx context.Context, c Command) *exec.Cmd {
	logging.LogCommand(r.logger, c.Name, c.Args)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd
}

// Run executes c with the runner's streams attached.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := r.command(ctx, c)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return r.wrap(c, cmd.Run(), nil)
}

// Output executes c and returns its stdout. Stderr is attached to the
// error details on failure.
func (r *ExecRunner) Output(ctx context.Context, c Command) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := r.command(ctx, c)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, r.wrap(c, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

func (r *ExecRunner) wrap(c Command, err error, stderr []byte) error {
	if err == nil {
		return nil
	}

	wrapped := uvwerrors.Wrapf(err, uvwerrors.ErrCommandFailed, "%s failed", c.Name).
		WithDetail("command", c.String())

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped.WithDetail("exitCode", exitErr.ExitCode())
	}
	if len(stderr) > 0 {
		wrapped.WithDetail("stderr", strings.TrimSpace(string(stderr)))
	}

	r.logger.Debug().Err(err).Str("command", c.String()).Msg("Command failed")
	return wrapped
}
