// pkg/tree/builder_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil.TestFS (in-memory)
// PURPOSE: Test tree construction, filtering, depth limits and ordering

package tree_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/filesystem"
	"github.com/arthur-debert/bonsai/pkg/filter"
	"github.com/arthur-debert/bonsai/pkg/rules"
	"github.com/arthur-debert/bonsai/pkg/testutil"
	"github.com/arthur-debert/bonsai/pkg/tree"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/project"

var projectLayout = map[string]string{
	"src/main.py":          "print('hello')",
	"tests/test_main.py":   "def test_main(): pass",
	"build/output.js":      "console.log('built')",
	".git/":                "",
	"README.md":            "# Test Project",
	"requirements.txt":     "pytest",
	".gitignore":           "build/\n*.pyc\n__pycache__/\n",
	"src/cache.pyc":        "bytes",
	"src/__pycache__/x.py": "",
}

func newBuilder(fsys types.FS, cfg *config.Config) *tree.Builder {
	var loaded *rules.RuleSet
	if cfg.Filter.RespectGitignore {
		loaded = rules.NewLoader(fsys, cfg.Filter.RuleFile).Load(cfg.Root).Rules
	}
	return tree.NewBuilder(fsys, cfg, filter.NewPolicy(loaded, cfg))
}

func defaultConfig() *config.Config {
	cfg := config.Default()
	cfg.Root = root
	return cfg
}

func TestBuildRoot_Gitignore(t *testing.T) {
	t.Run("respects_rule_file", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, projectLayout)

		node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
		require.NoError(t, err)

		assert.Equal(t, "project", node.Name)
		assert.True(t, node.IsDir)
		assert.Equal(t, []string{"src", "tests", "README.md", "requirements.txt"}, node.ChildNames())
		assert.Equal(t, []string{"main.py"}, node.Lookup("src").ChildNames())
	})

	t.Run("disabled_rule_file", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, projectLayout)

		cfg := defaultConfig()
		cfg.Filter.RespectGitignore = false
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		assert.Equal(t, []string{"build", "src", "tests", "README.md", "requirements.txt"}, node.ChildNames())
		assert.Equal(t, []string{"__pycache__", "cache.pyc", "main.py"}, node.Lookup("src").ChildNames())
	})

	t.Run("disabled_rule_file_keeps_custom_rules", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, projectLayout)

		cfg := defaultConfig()
		cfg.Filter.RespectGitignore = false
		cfg.Filter.Ignore = []string{"*.txt"}
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		assert.Nil(t, node.Child("requirements.txt"))
		assert.NotNil(t, node.Child("build"))
	})

	t.Run("show_hidden", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, projectLayout)

		cfg := defaultConfig()
		cfg.Display.ShowHidden = true
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		assert.Equal(t, []string{".git", "src", "tests", ".gitignore", "README.md", "requirements.txt"}, node.ChildNames())
	})
}

func TestBuildRoot_ComplexRules(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, root, map[string]string{
		".gitignore":               "*.log\n!important.log\nnode_modules\n/config.json\ndist/\nsrc/*.tmp\n",
		"app.log":                  "",
		"important.log":            "",
		"config.json":              "{}",
		"src/config.json":          "{}",
		"src/scratch.tmp":          "",
		"src/nested/keep.tmp":      "",
		"src/nested/debug.log":     "",
		"web/node_modules/lib.js":  "",
		"web/index.js":             "",
		"dist/bundle.js":           "",
		"docs/dist":                "a file named dist",
		"logs/important.log":       "",
		"node_modules/pkg/main.js": "",
	})

	node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"docs",
		"docs/dist",
		"logs",
		"logs/important.log",
		"src",
		"src/nested",
		"src/nested/keep.tmp",
		"src/config.json",
		"web",
		"web/index.js",
		"important.log",
	}, testutil.Paths(node))
}

func TestBuild_Depth(t *testing.T) {
	layout := map[string]string{
		"a/b/c/deep.txt": "",
		"top.txt":        "",
	}

	t.Run("zero_depth_root_only", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, layout)

		cfg := defaultConfig()
		cfg.Traversal.MaxDepth = 0
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		require.NotNil(t, node)
		assert.Empty(t, node.Children)
	})

	t.Run("depth_one", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, layout)

		cfg := defaultConfig()
		cfg.Traversal.MaxDepth = 1
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "top.txt"}, node.ChildNames())
		assert.Empty(t, node.Child("a").Children)
	})

	t.Run("unbounded", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, layout)

		node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
		require.NoError(t, err)

		require.NotNil(t, node.Lookup("a/b/c/deep.txt"))
	})

	t.Run("build_beyond_max_depth_is_nil", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, layout)

		cfg := defaultConfig()
		cfg.Traversal.MaxDepth = 2
		b := newBuilder(fsys, cfg)

		assert.Nil(t, b.Build(filepath.Join(root, "a", "b", "c"), 3))
		assert.NotNil(t, b.Build(filepath.Join(root, "a", "b"), 2))
	})

	t.Run("no_node_deeper_than_max", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, layout)

		cfg := defaultConfig()
		cfg.Traversal.MaxDepth = 2
		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.NoError(t, err)

		maxSeen := 0
		node.Walk(func(n *types.TreeNode, depth int) bool {
			if depth > maxSeen {
				maxSeen = depth
			}
			return true
		})
		assert.Equal(t, 2, maxSeen)
	})
}

func TestBuild_Nodes(t *testing.T) {
	t.Run("nonexistent_path_is_nil", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, nil)

		assert.Nil(t, newBuilder(fsys, defaultConfig()).Build("/project/missing", 1))
	})

	t.Run("file_node", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, map[string]string{"notes.txt": "hello world"})

		node := newBuilder(fsys, defaultConfig()).Build("/project/notes.txt", 1)
		require.NotNil(t, node)
		assert.Equal(t, "notes.txt", node.Name)
		assert.Equal(t, "/project/notes.txt", node.Path)
		assert.False(t, node.IsDir)
		assert.Equal(t, int64(11), node.Size)
		assert.Empty(t, node.Children)
	})

	t.Run("directory_size_is_zero", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, map[string]string{"sub/": ""})

		node := newBuilder(fsys, defaultConfig()).Build("/project/sub", 1)
		require.NotNil(t, node)
		assert.True(t, node.IsDir)
		assert.Zero(t, node.Size)
	})

	t.Run("empty_directory", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, nil)

		node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
		require.NoError(t, err)
		assert.Empty(t, node.Children)
	})

	t.Run("unreadable_directory_has_no_children", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, map[string]string{
			"locked/secret.txt": "",
			"open/visible.txt":  "",
		})
		fsys.WithError(testutil.OpReadDir, "/project/locked", fs.ErrPermission)

		node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
		require.NoError(t, err)

		locked := node.Child("locked")
		require.NotNil(t, locked)
		assert.True(t, locked.IsDir)
		assert.Empty(t, locked.Children)
		assert.Equal(t, []string{"visible.txt"}, node.Child("open").ChildNames())
	})
}

func TestBuild_Ordering(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, root, map[string]string{
		"zeta.txt":   "",
		"Alpha.txt":  "",
		"beta/":      "",
		"Gamma/":     "",
		"alpha/":     "",
		"delta.md":   "",
		"alpha.txt":  "",
		"Zoo/x.txt":  "",
		"apple/y.go": "",
	})

	node, err := newBuilder(fsys, defaultConfig()).BuildRoot()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"alpha", "apple", "beta", "Gamma", "Zoo",
		"Alpha.txt", "alpha.txt", "delta.md", "zeta.txt",
	}, node.ChildNames())

	t.Run("sort_children_directly", func(t *testing.T) {
		nodes := []*types.TreeNode{
			{Name: "b.txt"},
			{Name: "A", IsDir: true},
			{Name: "a.txt"},
			{Name: "c", IsDir: true},
		}
		tree.SortChildren(nodes)

		var names []string
		for _, n := range nodes {
			names = append(names, n.Name)
		}
		assert.Equal(t, []string{"A", "c", "a.txt", "b.txt"}, names)
	})
}

func TestBuild_Idempotent(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, root, projectLayout)

	b := newBuilder(fsys, defaultConfig())
	first, err := b.BuildRoot()
	require.NoError(t, err)
	second, err := b.BuildRoot()
	require.NoError(t, err)

	assert.Equal(t, testutil.Paths(first), testutil.Paths(second))
}

func TestBuildRoot_Errors(t *testing.T) {
	t.Run("missing_root", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		cfg := defaultConfig()
		cfg.Root = "/nowhere"

		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.Error(t, err)
		assert.Nil(t, node)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
		assert.Contains(t, err.Error(), "Path '/nowhere' does not exist")
	})

	t.Run("root_is_file", func(t *testing.T) {
		fsys := testutil.NewTestFS()
		testutil.WriteTree(t, fsys, root, map[string]string{"file.txt": "x"})
		cfg := defaultConfig()
		cfg.Root = "/project/file.txt"

		node, err := newBuilder(fsys, cfg).BuildRoot()
		require.Error(t, err)
		assert.Nil(t, node)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotDir))
	})
}

func TestBuild_SymlinkedDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real", "inner"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "inner", "f.txt"), []byte("x"), 0644))
	if err := os.Symlink(dir, filepath.Join(dir, "real", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	cfg := config.Default()
	cfg.Root = dir
	node, err := newBuilder(filesystem.NewOS(), cfg).BuildRoot()
	require.NoError(t, err)

	loop := node.Lookup("real/loop")
	require.NotNil(t, loop)
	assert.True(t, loop.IsDir)
	assert.Empty(t, loop.Children)
	assert.NotNil(t, node.Lookup("real/inner/f.txt"))
}
