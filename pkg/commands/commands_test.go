package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/testutil"
	"github.com/arthur-debert/uvw/pkg/venv"
)

func newRegistry(t *testing.T, home string) *registry.Registry {
	t.Helper()
	r, err := registry.New(registry.Options{WorkonHome: home, Patterns: venv.DefaultPatterns})
	require.NoError(t, err)
	return r
}

// linked returns a registry holding links to every valid project in tree.
func linked(t *testing.T, tree *testutil.VenvTree) *registry.Registry {
	t.Helper()
	r := newRegistry(t, testutil.NewWorkonHome(t))
	_, err := Link(LinkOptions{Registry: r, Parents: []string{tree.Root}})
	require.NoError(t, err)
	return r
}

func TestLink(t *testing.T) {
	tree := testutil.NewVenvTree(t)

	t.Run("parent links every valid project", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		result, err := Link(LinkOptions{Registry: r, Parents: []string{tree.Root}})
		require.NoError(t, err)
		assert.Len(t, result.Linked, 3*testutil.VenvTreeSize)
		assert.Empty(t, result.Skipped)

		for _, name := range tree.ValidProjects() {
			link := filepath.Join(r.Home(), name)
			assert.True(t, venv.IsValid(r.FS(), link), name)
		}
		for _, name := range tree.InvalidProjects() {
			testutil.AssertNoFile(t, filepath.Join(r.Home(), name))
		}
	})

	t.Run("relative targets by default", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		result, err := Link(LinkOptions{Registry: r, Paths: []string{tree.Path("has_dotvenv_0")}})
		require.NoError(t, err)
		require.Len(t, result.Linked, 1)

		got := result.Linked[0]
		assert.Equal(t, "has_dotvenv_0", got.Name)
		assert.False(t, filepath.IsAbs(got.Target))
		assert.False(t, got.Replaced)
		testutil.AssertSymlink(t, got.Link, got.Target)
	})

	t.Run("resolve writes absolute targets", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		result, err := Link(LinkOptions{Registry: r, Paths: []string{tree.Path("is_venv_1")}, Resolve: true})
		require.NoError(t, err)
		require.Len(t, result.Linked, 1)
		testutil.AssertSymlink(t, filepath.Join(r.Home(), "is_venv_1"), tree.Path("is_venv_1"))
	})

	t.Run("dry run touches nothing", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		result, err := Link(LinkOptions{Registry: r, Paths: []string{tree.Path("is_venv_0")}, DryRun: true})
		require.NoError(t, err)
		assert.True(t, result.DryRun)
		require.Len(t, result.Linked, 1)
		testutil.AssertNoFile(t, filepath.Join(r.Home(), "is_venv_0"))
	})

	t.Run("explicit names", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		result, err := Link(LinkOptions{
			Registry: r,
			Paths:    []string{tree.Path("has_venv_2")},
			Names:    []string{"mine"},
		})
		require.NoError(t, err)
		require.Len(t, result.Linked, 1)
		assert.Equal(t, "mine", result.Linked[0].Name)
		assert.True(t, venv.IsValid(r.FS(), filepath.Join(r.Home(), "mine")))
	})

	t.Run("missing parent", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))

		_, err := Link(LinkOptions{Registry: r, Parents: []string{filepath.Join(tree.Root, "nope")}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotADirectory))
	})
}

func TestLinkExisting(t *testing.T) {
	tree := testutil.NewVenvTree(t)
	r := newRegistry(t, testutil.NewWorkonHome(t))
	link := filepath.Join(r.Home(), "env")

	// env currently points at is_venv_0
	_, err := Link(LinkOptions{Registry: r, Paths: []string{tree.Path("is_venv_0")}, Names: []string{"env"}, Resolve: true})
	require.NoError(t, err)

	t.Run("declined replacement is skipped", func(t *testing.T) {
		confirmer := &testutil.FakeConfirmer{Default: false}
		result, err := Link(LinkOptions{
			Registry:  r,
			Paths:     []string{tree.Path("is_venv_1")},
			Names:     []string{"env"},
			Resolve:   true,
			Confirmer: confirmer,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Linked)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, []string{"Overwrite " + link}, confirmer.Asked)
		testutil.AssertSymlink(t, link, tree.Path("is_venv_0"))
	})

	t.Run("no confirmer declines", func(t *testing.T) {
		result, err := Link(LinkOptions{Registry: r, Paths: []string{tree.Path("is_venv_1")}, Names: []string{"env"}})
		require.NoError(t, err)
		assert.Len(t, result.Skipped, 1)
		testutil.AssertSymlink(t, link, tree.Path("is_venv_0"))
	})

	t.Run("confirmed replacement", func(t *testing.T) {
		confirmer := &testutil.FakeConfirmer{Default: true}
		result, err := Link(LinkOptions{
			Registry:  r,
			Paths:     []string{tree.Path("is_venv_1")},
			Names:     []string{"env"},
			Resolve:   true,
			Confirmer: confirmer,
		})
		require.NoError(t, err)
		require.Len(t, result.Linked, 1)
		assert.True(t, result.Linked[0].Replaced)
		testutil.AssertSymlink(t, link, tree.Path("is_venv_1"))
	})

	t.Run("yes replaces without asking", func(t *testing.T) {
		confirmer := &testutil.FakeConfirmer{}
		_, err := Link(LinkOptions{
			Registry:  r,
			Paths:     []string{tree.Path("is_venv_2")},
			Names:     []string{"env"},
			Resolve:   true,
			Yes:       true,
			Confirmer: confirmer,
		})
		require.NoError(t, err)
		assert.Empty(t, confirmer.Asked)
		testutil.AssertSymlink(t, link, tree.Path("is_venv_2"))
	})

	t.Run("dangling link is replaced without asking", func(t *testing.T) {
		dangling := filepath.Join(r.Home(), "dangling")
		testutil.CreateSymlink(t, filepath.Join(tree.Root, "gone"), dangling)

		confirmer := &testutil.FakeConfirmer{}
		result, err := Link(LinkOptions{
			Registry:  r,
			Paths:     []string{tree.Path("is_venv_0")},
			Names:     []string{"dangling"},
			Resolve:   true,
			Confirmer: confirmer,
		})
		require.NoError(t, err)
		assert.Empty(t, confirmer.Asked)
		require.Len(t, result.Linked, 1)
		assert.True(t, result.Linked[0].Replaced)
		testutil.AssertSymlink(t, dangling, tree.Path("is_venv_0"))
	})
}

func TestList(t *testing.T) {
	tree := testutil.NewVenvTree(t)

	t.Run("sorted with resolved paths", func(t *testing.T) {
		r := linked(t, tree)

		envs, err := List(ListOptions{Registry: r})
		require.NoError(t, err)
		require.Len(t, envs, 3*testutil.VenvTreeSize)

		for i := 1; i < len(envs); i++ {
			assert.Less(t, envs[i-1].Name, envs[i].Name)
		}

		byName := map[string]string{}
		for _, env := range envs {
			byName[env.Name] = env.Path
			assert.Equal(t, filepath.Join(r.Home(), env.Name), env.Link)
		}
		assert.Equal(t, filepath.Join(tree.Path("has_dotvenv_0"), ".venv"), byName["has_dotvenv_0"])
		assert.Equal(t, filepath.Join(tree.Path("has_venv_1"), "venv"), byName["has_venv_1"])
		assert.Equal(t, tree.Path("is_venv_2"), byName["is_venv_2"])
	})

	t.Run("missing workon home is empty", func(t *testing.T) {
		r := newRegistry(t, filepath.Join(testutil.ResolvedTempDir(t), "absent"))
		envs, err := List(ListOptions{Registry: r})
		require.NoError(t, err)
		assert.Empty(t, envs)
	})

	t.Run("names", func(t *testing.T) {
		r := newRegistry(t, testutil.NewWorkonHome(t))
		testutil.CreateVenv(t, filepath.Join(r.Home(), "b"))
		testutil.CreateVenv(t, filepath.Join(r.Home(), "a"))
		testutil.CreateDir(t, r.Home(), "not-env")

		names, err := Names(r)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, names)
	})
}

func TestClean(t *testing.T) {
	setup := func(t *testing.T) (*registry.Registry, string, string) {
		t.Helper()
		tree := testutil.NewVenvTree(t)
		r := linked(t, tree)

		// is_venv_0 disappears, is_venv_1 stops being an environment
		require.NoError(t, os.RemoveAll(tree.Path("is_venv_0")))
		require.NoError(t, os.Remove(filepath.Join(tree.Path("is_venv_1"), venv.MarkerFile)))
		return r, filepath.Join(r.Home(), "is_venv_0"), filepath.Join(r.Home(), "is_venv_1")
	}

	t.Run("yes removes every broken link", func(t *testing.T) {
		r, gone, changed := setup(t)

		removed, err := Clean(CleanOptions{Registry: r, Yes: true})
		require.NoError(t, err)
		require.Len(t, removed, 2)
		testutil.AssertNoFile(t, gone)
		testutil.AssertNoFile(t, changed)

		names := []string{removed[0].Name, removed[1].Name}
		assert.ElementsMatch(t, []string{"is_venv_0", "is_venv_1"}, names)
		assert.NotEmpty(t, removed[0].Target)

		envs, err := List(ListOptions{Registry: r})
		require.NoError(t, err)
		assert.Len(t, envs, 3*testutil.VenvTreeSize-2)
	})

	t.Run("dry run keeps links", func(t *testing.T) {
		r, gone, _ := setup(t)

		removed, err := Clean(CleanOptions{Registry: r, Yes: true, DryRun: true})
		require.NoError(t, err)
		assert.Len(t, removed, 2)
		assert.True(t, testutil.SymlinkExists(t, gone))
	})

	t.Run("confirmation per link", func(t *testing.T) {
		r, gone, changed := setup(t)
		target := testutil.ReadSymlink(t, gone)

		confirmer := &testutil.FakeConfirmer{Answers: map[string]bool{
			"Remove " + gone + " -> " + target: true,
		}}
		removed, err := Clean(CleanOptions{Registry: r, Confirmer: confirmer})
		require.NoError(t, err)
		require.Len(t, removed, 1)
		assert.Equal(t, "is_venv_0", removed[0].Name)
		assert.Equal(t, target, removed[0].Target)
		assert.Len(t, confirmer.Asked, 2)
		testutil.AssertNoFile(t, gone)
		assert.True(t, testutil.SymlinkExists(t, changed))
	})

	t.Run("nothing broken", func(t *testing.T) {
		r := linked(t, testutil.NewVenvTree(t))
		removed, err := Clean(CleanOptions{Registry: r, Yes: true})
		require.NoError(t, err)
		assert.Empty(t, removed)
	})
}
