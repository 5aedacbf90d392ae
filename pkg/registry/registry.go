// Package registry maintains the workon_home directory: a flat directory of
// symlinks, one per registered virtual environment.
//
// The registry holds no state of its own. Every operation re-reads the
// directory, and mutations are single unlink/symlink calls with no locking:
// the last writer wins and filesystem errors propagate unchanged.
package registry

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/filesystem"
	"github.com/arthur-debert/uvw/pkg/paths"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// Options configures a Registry.
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// WorkonHome is the registry directory; ~ is expanded
	WorkonHome string
	// Patterns is the ordered container name set used for resolution
	Patterns []string
	// Logger receives skip and link events. The zero value discards them.
	Logger zerolog.Logger
}

// Registry computes and applies link entries for one workon_home.
type Registry struct {
	fs       types.FS
	home     string
	patterns []string
	logger   zerolog.Logger
}

// New creates a Registry. The directory is not validated until an
// operation needs it.
func New(opts Options) (*Registry, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	home, err := paths.WorkonHome(opts.WorkonHome)
	if err != nil {
		return nil, err
	}

	return &Registry{
		fs:       fsys,
		home:     home,
		patterns: append([]string(nil), opts.Patterns...),
		logger:   opts.Logger,
	}, nil
}

// Home returns the absolute registry directory.
func (r *Registry) Home() string { return r.home }

// Patterns returns the container names used for resolution.
func (r *Registry) Patterns() []string { return r.patterns }

// FS returns the filesystem the registry operates on.
func (r *Registry) FS() types.FS { return r.fs }

// LinkPath returns where the link for name lives.
func (r *Registry) LinkPath(name string) string {
	return filepath.Join(r.home, name)
}

// BuildLinkEntries turns candidate paths into link entries.
//
// workon_home must be an existing directory. names, when given, must have
// one name per input; an empty name at a position falls back to inference.
// Inputs that hold no environment are logged and skipped, as is an
// environment reached a second time. A computed link that collides with a
// non-symlink, or with a different environment in the same batch, fails the
// whole batch.
func (r *Registry) BuildLinkEntries(inputs []string, names []string) ([]LinkEntry, error) {
	if _, err := venv.ValidateDir(r.fs, r.home); err != nil {
		return nil, err
	}

	if len(names) > 0 && len(names) != len(inputs) {
		return nil, errors.New(errors.ErrNamesLengthMismatch, "names length must match paths length").
			WithDetail("names", len(names)).
			WithDetail("paths", len(inputs))
	}

	entries := make([]LinkEntry, 0, len(inputs))
	owners := make(map[string]string, len(inputs))

	for i, input := range inputs {
		abs, err := paths.Absolute(input)
		if err != nil {
			return nil, err
		}

		found, ok := venv.Resolve(r.fs, abs, r.patterns)
		if !ok {
			r.logger.Info().Str("path", input).Msg("No virtual environment found, skipping")
			continue
		}

		var name string
		if len(names) > 0 {
			name = names[i]
		}
		if name == "" {
			name = venv.InferName(r.fs, found, r.patterns)
		} else if err := validateName(name); err != nil {
			return nil, err
		}

		link := r.LinkPath(name)
		if _, err := venv.ValidateSymlinkOrAbsent(r.fs, link); err != nil {
			return nil, err
		}

		canon := venv.Canonical(r.fs, found)
		if prev, exists := owners[link]; exists {
			if prev == canon {
				r.logger.Debug().Str("path", found).Str("link", link).Msg("Environment already in batch, skipping")
				continue
			}
			return nil, errors.Newf(errors.ErrLinkConflict,
				"link conflict: both %s and %s want to link to %s", prev, canon, link).
				WithDetail("link", link)
		}
		owners[link] = canon

		r.logger.Debug().Str("path", found).Str("link", link).Msg("Link entry")
		entries = append(entries, LinkEntry{Path: found, Link: link})
	}

	return entries, nil
}

// validateName rejects names that would place the link outside the
// registry directory.
func validateName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "invalid environment name %q", name).
			WithDetail("name", name)
	}
	return nil
}
