package walk_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/walk"
)

// makeTree creates files (with content) and directories (trailing slash) under root.
func makeTree(t *testing.T, root string, paths map[string]string) {
	t.Helper()

	for rel, content := range paths {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func sampleTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"a.txt":                     "hello",
		"src/main.go":               "package main",
		"src/lib/util.go":           "package lib",
		"node_modules/pkg/index.js": "module.exports = {}",
		".next/cache/x":             "x",
		"docs/":                     "",
		"web/node_modules/dep.js":   "dep",
		"web/app.js":                "app",
	})

	return root
}

// collect drains the walk into root-relative slash paths.
func collect(t *testing.T, root string, exclude walk.Excludes, opts ...walk.Option) (map[string]walk.Entry, []error) {
	t.Helper()

	entries := map[string]walk.Entry{}

	var errs []error

	for entry, err := range walk.New(root, exclude, opts...).All() {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		rel, relErr := filepath.Rel(root, entry.Path)
		require.NoError(t, relErr)

		entries[filepath.ToSlash(rel)] = entry
	}

	return entries, errs
}

func keys(m map[string]walk.Entry) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func TestWalk_NoExcludes(t *testing.T) {
	root := sampleTree(t)

	entries, errs := collect(t, root, nil)
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{
		"a.txt",
		"src", "src/main.go", "src/lib", "src/lib/util.go",
		"node_modules", "node_modules/pkg", "node_modules/pkg/index.js",
		".next", ".next/cache", ".next/cache/x",
		"docs",
		"web", "web/node_modules", "web/node_modules/dep.js", "web/app.js",
	}, keys(entries))

	assert.True(t, entries["src"].IsDir)
	assert.Zero(t, entries["src"].Size)
	assert.False(t, entries["a.txt"].IsDir)
	assert.Equal(t, uint64(5), entries["a.txt"].Size)
}

func TestWalk_DefaultExcludesPruneSubtrees(t *testing.T) {
	root := sampleTree(t)

	entries, errs := collect(t, root, walk.NewExcludes(walk.DefaultExcludes...))
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{
		"a.txt",
		"src", "src/main.go", "src/lib", "src/lib/util.go",
		"docs",
		"web", "web/app.js",
	}, keys(entries))

	for path := range entries {
		for _, part := range strings.Split(path, "/") {
			assert.NotContains(t, walk.DefaultExcludes, part, "entry %q lies under an excluded directory", path)
		}
	}
}

func TestWalk_ExcludedNameOnFileIsEmitted(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"node_modules":  "a file, not a directory",
		"keep/data.bin": "1234",
	})

	entries, errs := collect(t, root, walk.NewExcludes("node_modules"))
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{"node_modules", "keep", "keep/data.bin"}, keys(entries))
}

func TestWalk_UnknownExcludeIsNoop(t *testing.T) {
	root := sampleTree(t)

	all, _ := collect(t, root, walk.NewExcludes())
	filtered, _ := collect(t, root, walk.NewExcludes("doesnotexist"))

	assert.ElementsMatch(t, keys(all), keys(filtered))
}

func TestWalk_MatchesIndependentListing(t *testing.T) {
	root := sampleTree(t)

	var dirs, files int

	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			dirs++
		} else {
			files++
		}

		return nil
	}))

	var gotDirs, gotFiles int

	for entry, err := range walk.Walk(root, nil) {
		require.NoError(t, err)

		if entry.IsDir {
			gotDirs++
		} else {
			gotFiles++
		}
	}

	assert.Equal(t, dirs, gotDirs)
	assert.Equal(t, files, gotFiles)
}

func TestWalk_DepthFirst(t *testing.T) {
	root := sampleTree(t)

	var order []string

	for entry, err := range walk.Walk(root, nil) {
		require.NoError(t, err)

		rel, _ := filepath.Rel(root, entry.Path)
		order = append(order, filepath.ToSlash(rel))
	}

	// Every entry's parent directory appears before it, and once a directory's
	// subtree is left it is never re-entered.
	seen := map[string]int{}
	for i, path := range order {
		seen[path] = i

		if parent := filepath.ToSlash(filepath.Dir(path)); parent != "." {
			idx, ok := seen[parent]
			require.True(t, ok, "%q visited before its parent", path)

			for _, between := range order[idx+1 : i] {
				assert.True(t, strings.HasPrefix(between, parent+"/"),
					"%q interleaves the subtree of %q", between, parent)
			}
		}
	}
}

func TestWalk_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	entries, errs := collect(t, root, nil)

	assert.Empty(t, errs)
	assert.Empty(t, entries)
}

func TestWalk_RootNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	entries, errs := collect(t, missing, nil)

	assert.Empty(t, entries)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], fserr.ErrNotFound)
}

func TestWalk_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, errs := collect(t, file, nil)

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], fserr.ErrNotFound)
}

func TestWalk_ExcludedRootIsStillWalked(t *testing.T) {
	root := filepath.Join(t.TempDir(), "node_modules")
	makeTree(t, root, map[string]string{"pkg/index.js": "x"})

	entries, errs := collect(t, root, walk.NewExcludes("node_modules"))
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{"pkg", "pkg/index.js"}, keys(entries))
}

func TestWalk_EarlyStop(t *testing.T) {
	root := sampleTree(t)

	count := 0

	for _, err := range walk.Walk(root, nil) {
		require.NoError(t, err)

		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestWalk_MaxDepth(t *testing.T) {
	root := sampleTree(t)

	entries, errs := collect(t, root, nil, walk.WithMaxDepth(1))
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{"a.txt", "src", "node_modules", ".next", "docs", "web"}, keys(entries))
}

func TestWalk_SymlinksAreNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := t.TempDir()
	makeTree(t, root, map[string]string{"real/file.txt": "data"})
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	entries, errs := collect(t, root, nil)
	require.Empty(t, errs)

	assert.ElementsMatch(t, []string{"real", "real/file.txt", "link"}, keys(entries))
	assert.False(t, entries["link"].IsDir)
	assert.Zero(t, entries["link"].Size)
}

func TestWalk_PermissionDeniedSubtreeContinues(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	makeTree(t, root, map[string]string{
		"locked/secret.txt": "s",
		"open/file.txt":     "f",
	})

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	entries, errs := collect(t, root, nil)

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], fserr.ErrPermission)
	assert.ElementsMatch(t, []string{"locked", "open", "open/file.txt"}, keys(entries))
}
