package registry

import (
	"path/filepath"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// LinkEntry pairs a real environment with its link in the registry.
type LinkEntry struct {
	// Path is the absolute location of the environment
	Path string
	// Link is workon_home/<name>
	Link string
}

// Name is the registry name of the entry.
func (e LinkEntry) Name() string {
	return filepath.Base(e.Link)
}

// Target is the value the link will hold: the symlink free path when
// resolve is set, otherwise Path relative to the link's directory.
func (e LinkEntry) Target(fsys types.FS, resolve bool) (string, error) {
	abs, err := filepath.Abs(e.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot make %q absolute", e.Path)
	}

	if resolve {
		resolved, err := fsys.EvalSymlinks(abs)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", abs)
		}
		return resolved, nil
	}

	rel, err := filepath.Rel(filepath.Dir(e.Link), abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot compute link target for %s", e.Link)
	}
	return rel, nil
}

// Materialize points Link at the environment, replacing whatever link is
// there. With dryRun nothing is touched. Whether replacing should be
// confirmed is left to the caller.
func (e LinkEntry) Materialize(fsys types.FS, resolve, dryRun bool) error {
	if _, err := venv.ValidateSymlinkOrAbsent(fsys, e.Link); err != nil {
		return err
	}

	target, err := e.Target(fsys, resolve)
	if err != nil {
		return err
	}

	if dryRun {
		return nil
	}

	if _, err := fsys.Lstat(e.Link); err == nil {
		if err := fsys.Remove(e.Link); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", e.Link).
				WithDetail("link", e.Link)
		}
	}

	if err := fsys.Symlink(target, e.Link); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s -> %s", e.Link, target).
			WithDetail("link", e.Link).
			WithDetail("target", target)
	}
	return nil
}
