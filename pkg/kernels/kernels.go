// Package kernels registers and removes Jupyter kernel specs for virtual
// environments by driving the jupyter and uv executables.
package kernels

import (
	"context"
	_ "embed"
	"encoding/json"
	"os/exec"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/filesystem"
	"github.com/arthur-debert/uvw/pkg/logging"
	"github.com/arthur-debert/uvw/pkg/runner"
	"github.com/arthur-debert/uvw/pkg/types"
)

//go:embed scripts/ipykernel_install.py
var installScript string

// DefaultDisplayFormat is the kernel display name; {name} is replaced by
// the environment name.
const DefaultDisplayFormat = "Python [venv: {name}]"

// Spec is one installed kernel spec as reported by `jupyter kernelspec list --json`.
type Spec struct {
	ResourceDir string `json:"resource_dir"`
	Spec        struct {
		Argv        []string `json:"argv"`
		DisplayName string   `json:"display_name"`
		Language    string   `json:"language"`
	} `json:"spec"`
}

type specList struct {
	KernelSpecs map[string]Spec `json:"kernelspecs"`
}

// Manager talks to jupyter through a runner.
type Manager struct {
	runner   runner.Runner
	jupyter  string
	fs       types.FS
	lookPath func(string) (string, error)
	logger   zerolog.Logger
}

// NewManager creates a Manager. An empty jupyter means "jupyter" on PATH.
func NewManager(r runner.Runner, jupyter string) *Manager {
	if jupyter == "" {
		jupyter = "jupyter"
	}
	return &Manager{
		runner:   r,
		jupyter:  jupyter,
		fs:       filesystem.NewOS(),
		lookPath: exec.LookPath,
		logger:   logging.GetLogger("kernels"),
	}
}

func (m *Manager) kernelspec(args ...string) runner.Command {
	return runner.Command{Name: m.jupyter, Args: append([]string{"kernelspec"}, args...)}
}

// Specs returns every installed kernel spec keyed by name.
func (m *Manager) Specs(ctx context.Context) (map[string]Spec, error) {
	out, err := m.runner.Output(ctx, m.kernelspec("list", "--json"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrKernelspec, "cannot list kernel specs (is jupyter installed?)")
	}

	var list specList
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, errors.Wrap(err, errors.ErrKernelspec, "cannot parse kernel spec list")
	}
	if list.KernelSpecs == nil {
		list.KernelSpecs = map[string]Spec{}
	}
	return list.KernelSpecs, nil
}

// Names returns the installed kernel spec names, sorted.
func (m *Manager) Names(ctx context.Context) ([]string, error) {
	specs, err := m.Specs(ctx)
	if err != nil {
		return nil, err
	}
	return sortedNames(specs), nil
}

// Broken returns, sorted, the specs whose interpreter (argv[0]) neither
// exists as a path nor is found on PATH.
func (m *Manager) Broken(ctx context.Context) ([]string, error) {
	specs, err := m.Specs(ctx)
	if err != nil {
		return nil, err
	}

	var broken []string
	for _, name := range sortedNames(specs) {
		argv := specs[name].Spec.Argv
		if len(argv) == 0 {
			broken = append(broken, name)
			continue
		}
		if _, err := m.fs.Stat(argv[0]); err == nil {
			continue
		}
		if _, err := m.lookPath(argv[0]); err == nil {
			continue
		}
		m.logger.Debug().Str("kernel", name).Str("exe", argv[0]).Msg("Kernel interpreter missing")
		broken = append(broken, name)
	}
	return broken, nil
}

// Remove deletes the named specs without jupyter's own prompt.
func (m *Manager) Remove(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	return m.runner.Run(ctx, m.kernelspec(append([]string{"remove", "-f"}, names...)...))
}

// List streams `jupyter kernelspec list`.
func (m *Manager) List(ctx context.Context) error {
	return m.runner.Run(ctx, m.kernelspec("list"))
}

// InstallOptions describes one kernel installation.
type InstallOptions struct {
	// UV is the uv executable
	UV string
	// Path is the environment the kernel runs in
	Path string
	// Name is the kernel spec name
	Name string
	// DisplayFormat defaults to DefaultDisplayFormat
	DisplayFormat string
	// User installs into the per-user kernel directory
	User   bool
	DryRun bool
	// Extra arguments are passed to `ipykernel install` before uvw's own
	Extra []string
}

// InstallCommand builds the `uv run ... python -c <script>` invocation that
// installs a kernel from inside the environment.
func InstallCommand(opts InstallOptions) runner.Command {
	args := []string{"python", "-c", installScript}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, "--")
	args = append(args, opts.Extra...)
	args = append(args, "--name", opts.Name, "--display-name", DisplayName(opts.DisplayFormat, opts.Name))
	if opts.User {
		args = append(args, "--user")
	}
	return runner.UV(opts.UV, opts.Path, args...)
}

// DisplayName expands {name} in format.
func DisplayName(format, name string) string {
	if format == "" {
		format = DefaultDisplayFormat
	}
	return strings.ReplaceAll(format, "{name}", name)
}

func sortedNames(specs map[string]Spec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
