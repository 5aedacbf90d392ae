package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// VenvTreeSize is the number of projects of each kind NewVenvTree creates.
const VenvTreeSize = 3

// VenvTree is a directory of sibling projects in every shape the registry
// has to handle:
//
//	has_dotvenv_i/.venv/pyvenv.cfg  project with a .venv environment
//	has_venv_i/venv/pyvenv.cfg      project with a venv environment
//	is_venv_i/pyvenv.cfg            bare environment
//	bad_dotvenv_i/.venv/            container without pyvenv.cfg
//	bad_venv_i/venv/                container without pyvenv.cfg
//	no_venv_i/                      plain directory
type VenvTree struct {
	// Root is the symlink free parent of every project
	Root string
}

// NewVenvTree builds the fixture under a fresh temporary directory.
func NewVenvTree(t *testing.T) *VenvTree {
	t.Helper()

	root := filepath.Join(ResolvedTempDir(t), "a", "b", "c")
	for i := 0; i < VenvTreeSize; i++ {
		CreateVenv(t, filepath.Join(root, fmt.Sprintf("has_dotvenv_%d", i), ".venv"))
		CreateVenv(t, filepath.Join(root, fmt.Sprintf("has_venv_%d", i), "venv"))
		CreateVenv(t, filepath.Join(root, fmt.Sprintf("is_venv_%d", i)))

		CreateDir(t, root, filepath.Join(fmt.Sprintf("bad_dotvenv_%d", i), ".venv"))
		CreateDir(t, root, filepath.Join(fmt.Sprintf("bad_venv_%d", i), "venv"))
		CreateDir(t, root, fmt.Sprintf("no_venv_%d", i))
	}

	return &VenvTree{Root: root}
}

// Path returns the absolute path of a project in the tree.
func (v *VenvTree) Path(name string) string {
	return filepath.Join(v.Root, name)
}

// ValidProjects returns the names of projects that hold or are an environment.
func (v *VenvTree) ValidProjects() []string {
	var out []string
	for i := 0; i < VenvTreeSize; i++ {
		out = append(out,
			fmt.Sprintf("has_dotvenv_%d", i),
			fmt.Sprintf("has_venv_%d", i),
			fmt.Sprintf("is_venv_%d", i),
		)
	}
	return out
}

// InvalidProjects returns the names of projects without an environment.
func (v *VenvTree) InvalidProjects() []string {
	var out []string
	for i := 0; i < VenvTreeSize; i++ {
		out = append(out,
			fmt.Sprintf("bad_dotvenv_%d", i),
			fmt.Sprintf("bad_venv_%d", i),
			fmt.Sprintf("no_venv_%d", i),
		)
	}
	return out
}

// CreateVenv creates dir with an empty pyvenv.cfg, the only marker uvw
// looks at.
func CreateVenv(t *testing.T, dir string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create venv directory %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0644); err != nil {
		t.Fatalf("Failed to create pyvenv.cfg in %s: %v", dir, err)
	}
	return dir
}

// NewWorkonHome creates an empty registry directory.
func NewWorkonHome(t *testing.T) string {
	t.Helper()
	return CreateDir(t, ResolvedTempDir(t), "workon")
}

// ResolvedTempDir is t.TempDir with symlinks evaluated, so paths compare
// equal to what the registry computes on systems where the temp dir is
// itself behind a link.
func ResolvedTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	return dir
}
