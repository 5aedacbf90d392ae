// Package venv recognizes Python virtual environments on disk and infers
// their registry names.
//
// A directory is a virtual environment if and only if it directly contains
// a file named pyvenv.cfg. The file is never parsed, and nothing is cached:
// every query re-reads the filesystem.
package venv

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/types"
)

// MarkerFile is the file whose presence makes a directory an environment.
const MarkerFile = "pyvenv.cfg"

// DefaultPatterns are the container names tried under a project directory.
var DefaultPatterns = []string{".venv", "venv"}

// IsValid reports whether path is a directory containing MarkerFile.
// Missing paths and unreadable paths are simply not environments.
func IsValid(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = fsys.Stat(filepath.Join(path, MarkerFile))
	return err == nil
}

// Validate returns path unchanged if it is an environment.
func Validate(fsys types.FS, path string) (string, error) {
	if !IsValid(fsys, path) {
		return "", errors.Newf(errors.ErrNotAVirtualEnv, "%s is not a valid virtual environment", path).
			WithDetail("path", path)
	}
	return path, nil
}

// InferName derives the registry name of an environment. The path is made
// symlink free first, so a linked .venv is still recognized as a container:
// when the resolved base name is one of patterns the parent's base name is
// used instead.
func InferName(fsys types.FS, path string, patterns []string) string {
	resolved := canonical(fsys, path)
	name := filepath.Base(resolved)
	for _, p := range patterns {
		if name == p {
			return filepath.Base(filepath.Dir(resolved))
		}
	}
	return name
}

// Resolve finds the environment for path: path itself if valid, else the
// first path/pattern that is valid, in pattern order.
func Resolve(fsys types.FS, path string, patterns []string) (string, bool) {
	if IsValid(fsys, path) {
		return path, true
	}
	for _, p := range patterns {
		candidate := filepath.Join(path, p)
		if IsValid(fsys, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ResolveOrErr is Resolve for callers that named path explicitly, where a
// miss is a user error.
func ResolveOrErr(fsys types.FS, path string, patterns []string) (string, error) {
	found, ok := Resolve(fsys, path, patterns)
	if !ok {
		return "", errors.Newf(errors.ErrNoVirtualEnvFound, "no virtual environment found at %s", path).
			WithDetail("path", path).
			WithDetail("patterns", patterns)
	}
	return found, nil
}

// ValidateDir fails unless path exists and is a directory.
func ValidateDir(fsys types.FS, path string) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrNotADirectory, "%s is not a directory", path).
			WithDetail("path", path)
	}
	return path, nil
}

// ValidateSymlinkOrAbsent fails if something other than a symlink occupies
// path. Dangling links pass.
func ValidateSymlinkOrAbsent(fsys types.FS, path string) (string, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return path, nil
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", errors.Newf(errors.ErrPathExistsNotSymlink, "%s exists and is not a symlink", path).
			WithDetail("path", path)
	}
	return path, nil
}

// IsSymlink reports whether path itself is a symbolic link.
func IsSymlink(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// Canonical returns the absolute, symlink free form of path. Paths that
// cannot be resolved (for example missing ones) are only made absolute.
func Canonical(fsys types.FS, path string) string {
	return canonical(fsys, path)
}

func canonical(fsys types.FS, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := fsys.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
