package commands

import (
	"path/filepath"

	"github.com/arthur-debert/uvw/pkg/paths"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// NameMappingOptions gathers environments from several sources.
type NameMappingOptions struct {
	Registry *registry.Registry
	// IncludeRegistry adds every registered environment
	IncludeRegistry bool
	// Names are registry names; each must be a valid environment
	Names []string
	// Paths are environments or project directories; each must resolve
	Paths []string
}

// NameMapping returns name/path pairs from the registry, then Names, then
// Paths. A later source overrides the path of an earlier name but keeps
// its position.
func NameMapping(opts NameMappingOptions) ([]types.NamedPath, error) {
	r := opts.Registry
	fsys := r.FS()

	var out []types.NamedPath
	index := map[string]int{}
	add := func(name, path string) {
		if i, ok := index[name]; ok {
			out[i].Path = path
			return
		}
		index[name] = len(out)
		out = append(out, types.NamedPath{Name: name, Path: path})
	}

	if opts.IncludeRegistry {
		for link, err := range r.Scan() {
			if err != nil {
				return nil, err
			}
			add(filepath.Base(link), link)
		}
	}

	for _, name := range opts.Names {
		path, err := venv.Validate(fsys, r.LinkPath(name))
		if err != nil {
			return nil, err
		}
		add(name, path)
	}

	for _, p := range opts.Paths {
		abs, err := paths.Absolute(p)
		if err != nil {
			return nil, err
		}
		path, err := venv.ResolveOrErr(fsys, abs, r.Patterns())
		if err != nil {
			return nil, err
		}
		add(venv.InferName(fsys, path, r.Patterns()), path)
	}

	return out, nil
}
