package venv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/filesystem"
	"github.com/arthur-debert/uvw/pkg/testutil"
)

func TestIsValid(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"bare environment", tree.Path("is_venv_0"), true},
		{"dotvenv container", tree.Path("has_dotvenv_0/.venv"), true},
		{"venv container", tree.Path("has_venv_1/venv"), true},
		{"project holding an environment", tree.Path("has_dotvenv_0"), false},
		{"container without marker", tree.Path("bad_dotvenv_0/.venv"), false},
		{"plain directory", tree.Path("no_venv_2"), false},
		{"missing path", tree.Path("does_not_exist"), false},
		{"marker file itself", tree.Path("is_venv_0/pyvenv.cfg"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(fsys, tt.path))
		})
	}
}

// IsValid must agree with a direct check of the predicate for every entry
// of the fixture.
func TestIsValidMatchesPredicate(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	err := filepath.Walk(tree.Root, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		_, markerErr := os.Stat(filepath.Join(path, MarkerFile))
		want := info.IsDir() && markerErr == nil
		assert.Equal(t, want, IsValid(fsys, path), path)
		return nil
	})
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	got, err := Validate(fsys, tree.Path("is_venv_1"))
	require.NoError(t, err)
	assert.Equal(t, tree.Path("is_venv_1"), got)

	_, err = Validate(fsys, tree.Path("has_venv_1"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotAVirtualEnv))
	assert.Equal(t, tree.Path("has_venv_1"), errors.GetErrorDetails(err)["path"])
}

func TestResolve(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	tests := []struct {
		name     string
		path     string
		patterns []string
		want     string
		found    bool
	}{
		{"self", tree.Path("is_venv_0"), DefaultPatterns, tree.Path("is_venv_0"), true},
		{"self with no patterns", tree.Path("is_venv_0"), nil, tree.Path("is_venv_0"), true},
		{"dotvenv", tree.Path("has_dotvenv_0"), DefaultPatterns, tree.Path("has_dotvenv_0/.venv"), true},
		{"venv", tree.Path("has_venv_2"), DefaultPatterns, tree.Path("has_venv_2/venv"), true},
		{"pattern not offered", tree.Path("has_venv_2"), []string{".venv"}, "", false},
		{"bad container", tree.Path("bad_venv_0"), DefaultPatterns, "", false},
		{"plain dir", tree.Path("no_venv_0"), DefaultPatterns, "", false},
		{"missing", tree.Path("missing"), DefaultPatterns, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(fsys, tt.path, tt.patterns)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePriority(t *testing.T) {
	fsys := filesystem.NewOS()
	root := testutil.ResolvedTempDir(t)

	t.Run("self wins over containers", func(t *testing.T) {
		proj := testutil.CreateVenv(t, filepath.Join(root, "both"))
		testutil.CreateVenv(t, filepath.Join(proj, ".venv"))

		got, ok := Resolve(fsys, proj, DefaultPatterns)
		require.True(t, ok)
		assert.Equal(t, proj, got)
	})

	t.Run("first pattern wins", func(t *testing.T) {
		proj := filepath.Join(root, "two")
		testutil.CreateVenv(t, filepath.Join(proj, ".venv"))
		testutil.CreateVenv(t, filepath.Join(proj, "venv"))

		got, _ := Resolve(fsys, proj, []string{"venv", ".venv"})
		assert.Equal(t, filepath.Join(proj, "venv"), got)

		got, _ = Resolve(fsys, proj, []string{".venv", "venv"})
		assert.Equal(t, filepath.Join(proj, ".venv"), got)
	})
}

func TestResolveOrErr(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	got, err := ResolveOrErr(fsys, tree.Path("has_dotvenv_1"), DefaultPatterns)
	require.NoError(t, err)
	assert.Equal(t, tree.Path("has_dotvenv_1/.venv"), got)

	// A directory with nothing under it raises, where Resolve only misses.
	missing := tree.Path("no_venv_1")
	_, ok := Resolve(fsys, missing, DefaultPatterns)
	assert.False(t, ok)

	_, err = ResolveOrErr(fsys, missing, DefaultPatterns)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoVirtualEnvFound))
	assert.Equal(t, missing, errors.GetErrorDetails(err)["path"])
}

func TestInferName(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)

	tests := []struct {
		name     string
		path     string
		patterns []string
		want     string
	}{
		{"bare", tree.Path("is_venv_0"), DefaultPatterns, "is_venv_0"},
		{"dotvenv container", tree.Path("has_dotvenv_0/.venv"), DefaultPatterns, "has_dotvenv_0"},
		{"venv container", tree.Path("has_venv_0/venv"), DefaultPatterns, "has_venv_0"},
		{"container not in patterns", tree.Path("has_venv_0/venv"), []string{".venv"}, "venv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferName(fsys, tt.path, tt.patterns))
		})
	}
}

func TestInferNameResolvesSymlinks(t *testing.T) {
	testutil.SkipOnWindows(t)
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)
	other := testutil.ResolvedTempDir(t)

	// A link with an arbitrary name pointing at a .venv is named after the
	// project owning the real .venv.
	link := filepath.Join(other, "anything")
	testutil.CreateSymlink(t, tree.Path("has_dotvenv_2/.venv"), link)
	assert.Equal(t, "has_dotvenv_2", InferName(fsys, link, DefaultPatterns))

	// A link named .venv pointing at a bare environment takes the target's name.
	proj := testutil.CreateDir(t, other, "proj")
	dotvenv := filepath.Join(proj, ".venv")
	testutil.CreateSymlink(t, tree.Path("is_venv_2"), dotvenv)
	assert.Equal(t, "is_venv_2", InferName(fsys, dotvenv, DefaultPatterns))
}

func TestInferNameRelativePath(t *testing.T) {
	fsys := filesystem.NewOS()
	tree := testutil.NewVenvTree(t)
	testutil.Chdir(t, tree.Path("has_venv_1"))

	assert.Equal(t, "has_venv_1", InferName(fsys, "venv", DefaultPatterns))
	assert.Equal(t, "has_venv_1", InferName(fsys, ".", DefaultPatterns))
}

func TestValidateDir(t *testing.T) {
	fsys := filesystem.NewOS()
	root := testutil.ResolvedTempDir(t)
	file := testutil.CreateFile(t, root, "file", "x")

	got, err := ValidateDir(fsys, root)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	for _, p := range []string{file, filepath.Join(root, "missing")} {
		_, err := ValidateDir(fsys, p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory), p)
	}
}

func TestValidateSymlinkOrAbsent(t *testing.T) {
	testutil.SkipOnWindows(t)
	fsys := filesystem.NewOS()
	root := testutil.ResolvedTempDir(t)

	dir := testutil.CreateDir(t, root, "dir")
	file := testutil.CreateFile(t, root, "file", "x")
	live := filepath.Join(root, "live")
	testutil.CreateSymlink(t, dir, live)
	dangling := filepath.Join(root, "dangling")
	testutil.CreateSymlink(t, filepath.Join(root, "gone"), dangling)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"absent", filepath.Join(root, "absent"), false},
		{"live symlink", live, false},
		{"dangling symlink", dangling, false},
		{"directory", dir, true},
		{"regular file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSymlinkOrAbsent(fsys, tt.path)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrPathExistsNotSymlink))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, got)
		})
	}
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		name        string
		explicit    []string
		useDefaults bool
		want        []string
		wantErr     bool
	}{
		{"defaults only", nil, true, []string{".venv", "venv"}, false},
		{"explicit first", []string{"env"}, true, []string{"env", ".venv", "venv"}, false},
		{"explicit only", []string{"env", ".env"}, false, []string{"env", ".env"}, false},
		{"duplicates dropped", []string{"venv", "venv", ""}, true, []string{"venv", ".venv"}, false},
		{"nothing", nil, false, nil, true},
		{"only blanks", []string{""}, false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patterns(tt.explicit, tt.useDefaults)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrNoPatterns))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
