package commands

import (
	"context"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/runner"
)

// RunOptions defines the options for the Run command.
type RunOptions struct {
	Select SelectOptions
	// UV is the uv executable
	UV string
	// Args are passed to `uv run` after uvw's own options
	Args   []string
	DryRun bool
	Runner runner.Runner
}

// Run executes `uv run -p <env> --no-project <args>` in the selected
// environment. The command is returned; with DryRun it is not executed.
func Run(ctx context.Context, opts RunOptions) (runner.Command, error) {
	log := logger()
	if len(opts.Args) == 0 {
		return runner.Command{}, errors.New(errors.ErrInvalidInput, "no command given to run")
	}

	path, err := SelectPath(opts.Select)
	if err != nil {
		return runner.Command{}, err
	}

	cmd := runner.UV(opts.UV, path, opts.Args...)
	log.Info().Str("command", cmd.String()).Bool("dryRun", opts.DryRun).Msg("uv run")
	if opts.DryRun {
		return cmd, nil
	}

	return cmd, opts.Runner.Run(ctx, cmd)
}
