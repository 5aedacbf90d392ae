package commands

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/shell"
	"github.com/arthur-debert/uvw/pkg/types"
)

// ActivateOptions defines the options for the Activate command.
type ActivateOptions struct {
	Select SelectOptions
	// Shell selects the activate script flavour; fish uses activate.fish
	Shell string
	// NoCommand prints only the script path
	NoCommand bool
}

// Activate returns the shell line that activates the selected
// environment: `source <script>`, or the bare script path with NoCommand.
func Activate(opts ActivateOptions) (string, error) {
	path, err := SelectPath(opts.Select)
	if err != nil {
		return "", err
	}

	script, err := activateScript(opts.Select.Registry.FS(), path, opts.Shell)
	if err != nil {
		return "", err
	}

	if opts.NoCommand {
		return script, nil
	}
	return "source " + shellquote.Join(script), nil
}

// activateScript finds bin/activate (POSIX) or Scripts/activate (Windows)
// under the environment.
func activateScript(fsys types.FS, path, sh string) (string, error) {
	name := "activate"
	if sh == shell.Fish {
		name = "activate.fish"
	}

	for _, dir := range []string{"bin", "Scripts"} {
		candidate := filepath.Join(path, dir, name)
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrNoActivateScript, "no activate script found for %s", path).
		WithDetail("path", path)
}

// CdOptions defines the options for the Cd command.
type CdOptions struct {
	Select    SelectOptions
	NoCommand bool
}

// Cd returns `cd <dir>` for the directory holding the selected
// environment, after resolving symlinks. For a registry name this is the
// project the environment lives in.
func Cd(opts CdOptions) (string, error) {
	sel := opts.Select
	sel.Resolve = true

	path, err := SelectPath(sel)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if opts.NoCommand {
		return dir, nil
	}
	return "cd " + shellquote.Join(dir), nil
}
