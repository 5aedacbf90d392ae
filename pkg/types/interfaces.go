package types

import (
	"io/fs"
)

// FS is the filesystem surface the registry touches. Links are never
// followed implicitly: Lstat and Readlink look at the link itself, Stat
// and EvalSymlinks at what it points to.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Open(name string) (fs.File, error)

	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)

	// Remove deletes a single entry; on a link it removes the link only
	Remove(name string) error
}
