package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/arthur-debert/uvw/pkg/kernels"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/runner"
	"github.com/arthur-debert/uvw/pkg/ui"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// KernelsInstallOptions defines the options for the KernelsInstall command.
type KernelsInstallOptions struct {
	Registry *registry.Registry
	Manager  *kernels.Manager
	Runner   runner.Runner
	// All installs for every registered environment
	All   bool
	Names []string
	Paths []string
	// DisplayFormat is the kernel display name; {name} is replaced
	DisplayFormat string
	User          bool
	// Resolve runs the kernel from the symlink free environment path
	Resolve bool
	// UV is the uv executable
	UV string
	// Extra arguments are passed through to `ipykernel install`
	Extra     []string
	DryRun    bool
	Yes       bool
	Confirmer ui.Confirmer
}

// KernelInstall is one kernel KernelsInstall acted on.
type KernelInstall struct {
	Name    string         `json:"name" yaml:"name"`
	Path    string         `json:"path" yaml:"path"`
	Command runner.Command `json:"-" yaml:"-"`
}

// KernelsInstall installs a Jupyter kernel for each selected environment.
// Reinstalling an existing kernel spec is confirmed unless Yes is set.
// With DryRun the commands are returned without being run.
func KernelsInstall(ctx context.Context, opts KernelsInstallOptions) ([]KernelInstall, error) {
	log := logger()
	log.Debug().Str("command", "KernelsInstall").Msg("Executing command")

	installed, err := opts.Manager.Specs(ctx)
	if err != nil {
		return nil, err
	}

	mapping, err := NameMapping(NameMappingOptions{
		Registry:        opts.Registry,
		IncludeRegistry: opts.All,
		Names:           opts.Names,
		Paths:           opts.Paths,
	})
	if err != nil {
		return nil, err
	}

	var done []KernelInstall
	for _, np := range mapping {
		if _, exists := installed[np.Name]; exists {
			ok, err := confirm(opts.Confirmer, opts.Yes, fmt.Sprintf("Reinstall %s?", np.Name))
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		path := np.Path
		if opts.Resolve {
			path = venv.Canonical(opts.Registry.FS(), path)
		}

		cmd := kernels.InstallCommand(kernels.InstallOptions{
			UV:            opts.UV,
			Path:          path,
			Name:          np.Name,
			DisplayFormat: opts.DisplayFormat,
			User:          opts.User,
			DryRun:        opts.DryRun,
			Extra:         opts.Extra,
		})

		if !opts.DryRun {
			log.Info().Str("kernel", np.Name).Str("path", path).Msg("Installing kernel")
			if err := opts.Runner.Run(ctx, cmd); err != nil {
				return nil, err
			}
		}
		done = append(done, KernelInstall{Name: np.Name, Path: path, Command: cmd})
	}

	return done, nil
}

// KernelsRemoveOptions defines the options for the KernelsRemove command.
type KernelsRemoveOptions struct {
	Registry *registry.Registry
	Manager  *kernels.Manager
	// Names are kernel spec names
	Names []string
	// Paths are environments whose inferred names are removed
	Paths []string
	// Missing adds every spec whose interpreter is gone
	Missing   bool
	DryRun    bool
	Yes       bool
	Confirmer ui.Confirmer
}

// KernelsRemove removes the selected kernel specs that are installed and
// returns their names, sorted.
func KernelsRemove(ctx context.Context, opts KernelsRemoveOptions) ([]string, error) {
	log := logger()
	log.Debug().Str("command", "KernelsRemove").Msg("Executing command")

	mapping, err := NameMapping(NameMappingOptions{
		Registry: opts.Registry,
		Paths:    opts.Paths,
	})
	if err != nil {
		return nil, err
	}

	wanted := map[string]bool{}
	for _, np := range mapping {
		wanted[np.Name] = true
	}
	for _, name := range opts.Names {
		wanted[name] = true
	}
	if opts.Missing {
		broken, err := opts.Manager.Broken(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range broken {
			wanted[name] = true
		}
	}

	installed, err := opts.Manager.Specs(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(wanted))
	for name := range wanted {
		if _, ok := installed[name]; ok {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	var remove []string
	for _, name := range candidates {
		ok, err := confirm(opts.Confirmer, opts.Yes, fmt.Sprintf("Remove %s", name))
		if err != nil {
			return nil, err
		}
		if ok {
			remove = append(remove, name)
		}
	}

	if len(remove) == 0 {
		return nil, nil
	}

	log.Info().Strs("kernels", remove).Bool("dryRun", opts.DryRun).Msg("Remove kernel specs")
	if !opts.DryRun {
		if err := opts.Manager.Remove(ctx, remove); err != nil {
			return nil, err
		}
	}
	return remove, nil
}

// KernelsList streams jupyter's own kernel spec listing.
func KernelsList(ctx context.Context, m *kernels.Manager) error {
	return m.List(ctx)
}
