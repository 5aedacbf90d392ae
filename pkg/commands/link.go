package commands

import (
	"fmt"

	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/ui"
)

// LinkOptions defines the options for the Link command.
type LinkOptions struct {
	Registry *registry.Registry
	// Paths are environments or project directories
	Paths []string
	// Parents are directories whose children are all link candidates
	Parents []string
	// Names optionally names each input, one per path after expansion
	Names []string
	// Resolve writes absolute, symlink free targets
	Resolve bool
	DryRun  bool
	// Yes replaces existing links without asking
	Yes       bool
	Confirmer ui.Confirmer
}

// LinkedEnv is one entry Link acted on.
type LinkedEnv struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
	Path string `json:"path" yaml:"path"`
	// Target is the link value written (or that would be written)
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Replaced is set when a previous link was overwritten
	Replaced bool `json:"replaced,omitempty" yaml:"replaced,omitempty"`
}

// LinkResult reports what Link did.
type LinkResult struct {
	Linked  []LinkedEnv `json:"linked" yaml:"linked"`
	Skipped []LinkedEnv `json:"skipped" yaml:"skipped"`
	DryRun  bool        `json:"dry_run" yaml:"dry_run"`
}

// Link registers environments in workon_home. Absent and dangling links
// are written directly; an existing working link is replaced only when
// Yes is set or the confirmer agrees.
func Link(opts LinkOptions) (*LinkResult, error) {
	log := logger()
	log.Debug().Str("command", "Link").Msg("Executing command")

	r := opts.Registry
	fsys := r.FS()

	inputs, err := registry.ExpandInputs(fsys, opts.Paths, opts.Parents)
	if err != nil {
		return nil, err
	}

	entries, err := r.BuildLinkEntries(inputs, opts.Names)
	if err != nil {
		return nil, err
	}

	result := &LinkResult{DryRun: opts.DryRun}
	for _, entry := range entries {
		env := LinkedEnv{Name: entry.Name(), Link: entry.Link, Path: entry.Path}

		_, lerr := fsys.Lstat(entry.Link)
		exists := lerr == nil
		_, serr := fsys.Stat(entry.Link)
		live := serr == nil

		if live {
			ok, err := confirm(opts.Confirmer, opts.Yes, fmt.Sprintf("Overwrite %s", entry.Link))
			if err != nil {
				return nil, err
			}
			if !ok {
				log.Debug().Str("link", entry.Link).Str("path", entry.Path).Msg("Skipping")
				result.Skipped = append(result.Skipped, env)
				continue
			}
		}

		target, err := entry.Target(fsys, opts.Resolve)
		if err != nil {
			return nil, err
		}
		if err := entry.Materialize(fsys, opts.Resolve, opts.DryRun); err != nil {
			return nil, err
		}

		env.Target = target
		env.Replaced = exists
		log.Info().Str("link", entry.Link).Str("target", target).Bool("dryRun", opts.DryRun).Msg("Linked")
		result.Linked = append(result.Linked, env)
	}

	log.Info().Str("command", "Link").Int("linked", len(result.Linked)).Int("skipped", len(result.Skipped)).Msg("Command finished")
	return result, nil
}
