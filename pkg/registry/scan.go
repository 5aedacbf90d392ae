package registry

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/paths"
	"github.com/arthur-debert/uvw/pkg/types"
	"github.com/arthur-debert/uvw/pkg/venv"
)

// ScanRegistry yields the direct children of home that are valid
// environments, in directory order. A missing home yields nothing.
func ScanRegistry(fsys types.FS, home string) iter.Seq2[string, error] {
	return scan(fsys, home, func(p string) bool {
		return venv.IsValid(fsys, p)
	})
}

// ScanBrokenLinks yields the direct children of home that are symlinks
// but not valid environments, whether the target is gone or changed.
func ScanBrokenLinks(fsys types.FS, home string) iter.Seq2[string, error] {
	return scan(fsys, home, func(p string) bool {
		return venv.IsSymlink(fsys, p) && !venv.IsValid(fsys, p)
	})
}

// Scan is ScanRegistry over the registry's own directory.
func (r *Registry) Scan() iter.Seq2[string, error] {
	return ScanRegistry(r.fs, r.home)
}

// ScanBroken is ScanBrokenLinks over the registry's own directory.
func (r *Registry) ScanBroken() iter.Seq2[string, error] {
	return ScanBrokenLinks(r.fs, r.home)
}

func scan(fsys types.FS, home string, keep func(string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries, err := fsys.ReadDir(home)
		if err != nil {
			if os.IsNotExist(err) {
				return
			}
			yield("", errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", home))
			return
		}

		for _, entry := range entries {
			p := filepath.Join(home, entry.Name())
			if !keep(p) {
				continue
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// ReadLink returns the stored target of the link at path, exactly as
// written, or "" if it cannot be read.
func ReadLink(fsys types.FS, path string) string {
	target, err := fsys.Readlink(path)
	if err != nil {
		return ""
	}
	return target
}

// ExpandInputs returns paths followed by every direct child of each parent,
// parents in order and children sorted by name. ~ is expanded throughout.
func ExpandInputs(fsys types.FS, inputs, parents []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	for _, p := range inputs {
		out = append(out, paths.ExpandHome(p))
	}

	for _, parent := range parents {
		dir := paths.ExpandHome(parent)
		if _, err := venv.ValidateDir(fsys, dir); err != nil {
			return nil, err
		}

		matches, err := doublestar.Glob(subFS{fsys: fsys, root: dir}, "*")
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir)
		}
		for _, m := range matches {
			out = append(out, filepath.Join(dir, m))
		}
	}

	return out, nil
}

// subFS presents the directory root of fsys as an fs.FS for globbing.
type subFS struct {
	fsys types.FS
	root string
}

func (s subFS) path(op, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}

func (s subFS) Open(name string) (fs.File, error) {
	p, err := s.path("open", name)
	if err != nil {
		return nil, err
	}
	return s.fsys.Open(p)
}

func (s subFS) ReadDir(name string) ([]fs.DirEntry, error) {
	p, err := s.path("readdir", name)
	if err != nil {
		return nil, err
	}
	return s.fsys.ReadDir(p)
}

func (s subFS) Stat(name string) (fs.FileInfo, error) {
	p, err := s.path("stat", name)
	if err != nil {
		return nil, err
	}
	return s.fsys.Stat(p)
}
