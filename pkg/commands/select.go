package commands

import (
	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/paths"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/ui"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// SelectOptions picks one environment. Path wins over Name; with neither
// the user picks from the registry.
type SelectOptions struct {
	Registry *registry.Registry
	// Path is an environment or a project directory
	Path string
	// Name is a registry name
	Name string
	// Resolve returns the symlink free path
	Resolve bool
	Picker  ui.Picker
}

// SelectPath returns the environment described by opts. An empty registry
// with nothing given is ErrNoSelection.
func SelectPath(opts SelectOptions) (string, error) {
	log := logger()
	r := opts.Registry
	fsys := r.FS()

	var path string
	switch {
	case opts.Path != "":
		abs, err := paths.Absolute(opts.Path)
		if err != nil {
			return "", err
		}
		if path, err = venv.ResolveOrErr(fsys, abs, r.Patterns()); err != nil {
			return "", err
		}

	case opts.Name != "":
		var err error
		if path, err = venv.Validate(fsys, r.LinkPath(opts.Name)); err != nil {
			return "", err
		}

	default:
		names, err := Names(r)
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "", errors.New(errors.ErrNoSelection, "No virtual environment found").
				WithDetail("workon_home", r.Home())
		}
		if opts.Picker == nil {
			return "", errors.New(errors.ErrInvalidInput, "pass --name or --path, or run interactively to pick an environment")
		}
		choice, err := opts.Picker.Pick("venv", names)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "selection failed")
		}
		path = r.LinkPath(choice)
	}

	if opts.Resolve {
		path = venv.Canonical(fsys, path)
	}
	log.Debug().Str("path", path).Msg("Selected environment")
	return path, nil
}
