package commands

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/ui"
)

// CleanOptions defines the options for the Clean command.
type CleanOptions struct {
	Registry  *registry.Registry
	DryRun    bool
	Yes       bool
	Confirmer ui.Confirmer
}

// Clean removes links in workon_home that no longer lead to an
// environment. It returns the links removed, or that would be with DryRun.
func Clean(opts CleanOptions) ([]types.BrokenLink, error) {
	log := logger()
	log.Debug().Str("command", "Clean").Msg("Executing command")

	r := opts.Registry
	fsys := r.FS()

	var broken []string
	for link, err := range r.ScanBroken() {
		if err != nil {
			return nil, err
		}
		broken = append(broken, link)
	}

	removed := []types.BrokenLink{}
	for _, link := range broken {
		target := registry.ReadLink(fsys, link)

		ok, err := confirm(opts.Confirmer, opts.Yes, fmt.Sprintf("Remove %s -> %s", link, target))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		log.Info().Str("link", link).Str("target", target).Bool("dryRun", opts.DryRun).Msg("Remove symlink")
		if !opts.DryRun {
			if err := fsys.Remove(link); err != nil {
				return nil, errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", link).
					WithDetail("link", link)
			}
		}
		removed = append(removed, types.BrokenLink{
			Name:   filepath.Base(link),
			Link:   link,
			Target: target,
		})
	}

	log.Info().Str("command", "Clean").Int("removed", len(removed)).Msg("Command finished")
	return removed, nil
}
