package commands

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Registry *registry.Registry
}

// List returns the registered environments sorted by name, each with the
// symlink free path its link resolves to.
func List(opts ListOptions) ([]types.Environment, error) {
	log := logger()
	log.Debug().Str("command", "List").Msg("Executing command")

	r := opts.Registry
	envs := []types.Environment{}
	for link, err := range r.Scan() {
		if err != nil {
			return nil, err
		}
		envs = append(envs, types.Environment{
			Name: filepath.Base(link),
			Link: link,
			Path: venv.Canonical(r.FS(), link),
		})
	}

	sort.Slice(envs, func(i, j int) bool { return envs[i].Name < envs[j].Name })

	log.Info().Str("command", "List").Int("count", len(envs)).Msg("Command finished")
	return envs, nil
}

// Names returns the sorted names of the registered environments.
func Names(r *registry.Registry) ([]string, error) {
	envs, err := List(ListOptions{Registry: r})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(envs))
	for i, env := range envs {
		names[i] = env.Name
	}
	return names, nil
}
