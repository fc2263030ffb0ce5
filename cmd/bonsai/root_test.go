// cmd/bonsai/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: testutil.TestFS (in-memory), real filesystem for config files
// PURPOSE: Test the CLI surface: flags, subcommands, output and errors

package bonsai

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("BONSAI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("NO_COLOR", "1")
}

func memProject(t *testing.T) *testutil.TestFS {
	t.Helper()
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "/work/project", map[string]string{
		".gitignore":    "*.log\n!keep.log\ndist/\n",
		".env":          "SECRET=1",
		"src/main.go":   "package main\n",
		"src/util.go":   "package main\n",
		"dist/app.js":   "",
		"app.log":       "",
		"keep.log":      "kept",
		"README.md":     "# readme",
		"docs/guide.md": "guide",
	})
	return fsys
}

func execute(t *testing.T, fsys *testutil.TestFS, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(fsys)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Tree(t *testing.T) {
	isolate(t)

	t.Run("default_tree", func(t *testing.T) {
		out, err := execute(t, memProject(t), "/work/project")
		require.NoError(t, err)

		want := strings.Join([]string{
			"project/",
			"├── docs/",
			"│   └── guide.md",
			"├── src/",
			"│   ├── main.go",
			"│   └── util.go",
			"├── keep.log",
			"└── README.md",
			"",
		}, "\n")
		assert.Equal(t, want, out)
	})

	t.Run("max_depth_zero", func(t *testing.T) {
		out, err := execute(t, memProject(t), "/work/project", "-d", "0")
		require.NoError(t, err)
		assert.Equal(t, "project/\n", out)
	})

	t.Run("show_hidden_no_gitignore", func(t *testing.T) {
		out, err := execute(t, memProject(t), "/work/project", "-a", "--no-gitignore", "-d", "1")
		require.NoError(t, err)

		assert.Contains(t, out, ".env")
		assert.Contains(t, out, ".gitignore")
		assert.Contains(t, out, "dist/")
		assert.Contains(t, out, "app.log")
	})

	t.Run("repeatable_ignore_and_include", func(t *testing.T) {
		out, err := execute(t, memProject(t), "/work/project",
			"--ignore", "docs", "--ignore", "*.md", "--include", "app.log")
		require.NoError(t, err)

		assert.NotContains(t, out, "docs/")
		assert.NotContains(t, out, "README.md")
		assert.Contains(t, out, "app.log")
	})

	t.Run("icons_and_sizes", func(t *testing.T) {
		out, err := execute(t, memProject(t), "/work/project", "-i", "-s", "-d", "1")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "📁 project/\n"))
		assert.Contains(t, out, "└── 📝 README.md (8.0B)")
	})

	t.Run("env_override", func(t *testing.T) {
		t.Setenv("BONSAI_DISPLAY_SHOW_HIDDEN", "true")
		out, err := execute(t, memProject(t), "/work/project", "-d", "1")
		require.NoError(t, err)
		assert.Contains(t, out, ".env")
	})

	t.Run("flag_beats_env", func(t *testing.T) {
		t.Setenv("BONSAI_OUTPUT_FORMAT", "json")
		out, err := execute(t, memProject(t), "/work/project", "-f", "tree", "-d", "0")
		require.NoError(t, err)
		assert.Equal(t, "project/\n", out)
	})
}

func TestRootCmd_Output(t *testing.T) {
	isolate(t)
	fsys := memProject(t)

	out, err := execute(t, fsys, "/work/project", "-f", "json", "-o", "/out/tree.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Output written to /out/tree.json")

	data, err := fsys.ReadFile("/out/tree.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "project"`)
}

func TestRootCmd_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing_path", func(t *testing.T) {
		_, err := execute(t, memProject(t), "/work/nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
		assert.Equal(t, "Path '/work/nope' does not exist", errors.UserMessage(err))
	})

	t.Run("not_a_directory", func(t *testing.T) {
		_, err := execute(t, memProject(t), "/work/project/README.md")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotDir))
		assert.Equal(t, "Path '/work/project/README.md' is not a directory", errors.UserMessage(err))
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := execute(t, memProject(t), "/work/project", "-f", "csv")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("too_many_args", func(t *testing.T) {
		_, err := execute(t, memProject(t), "/a", "/b")
		require.Error(t, err)
	})
}

func TestCheckCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, memProject(t), "check", "--root", "/work/project",
		"app.log", "keep.log", "dist/app.js", "src/main.go", ".env")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, []string{"hidden", "ignored", "*.log", "app.log"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"shown", "override", "!keep.log", "keep.log"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"hidden", "ignored", "dist/", "dist/app.js", "(via", "dist)"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"shown", "default", "-", "src/main.go"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"hidden", "hidden", "-", ".env"}, strings.Fields(lines[4]))
}

func TestConfigCmd(t *testing.T) {
	isolate(t)

	t.Run("effective_config_reflects_flags", func(t *testing.T) {
		out, err := execute(t, memProject(t), "config", "/work/project", "-d", "2", "--ignore", "*.tmp")
		require.NoError(t, err)

		assert.Contains(t, out, "max_depth = 2")
		assert.Contains(t, out, "*.tmp")
	})

	t.Run("template", func(t *testing.T) {
		out, err := execute(t, memProject(t), "config", "/work/project", "--template")
		require.NoError(t, err)
		assert.Contains(t, out, "# show_hidden = false")
	})

	t.Run("project_file_from_disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".bonsai.toml"), []byte("[traversal]\nmax_depth = 4\n"), 0644))

		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"config", dir})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), "max_depth = 4")
	})
}

func TestCompletionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, memProject(t), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bonsai")

	_, err = execute(t, memProject(t), "completion", "tcsh")
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	out, err := execute(t, memProject(t), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	t.Run("lists_embedded_topics", func(t *testing.T) {
		out, err := execute(t, memProject(t), "help", "topics")
		require.NoError(t, err)
		assert.Contains(t, out, "  patterns")
		assert.Contains(t, out, "  config")
		assert.Contains(t, out, "  --format")
	})

	t.Run("renders_topic", func(t *testing.T) {
		out, err := execute(t, memProject(t), "help", "patterns")
		require.NoError(t, err)
		assert.Contains(t, out, "Negation")
	})

	t.Run("flag_topic", func(t *testing.T) {
		out, err := execute(t, memProject(t), "help", "format")
		require.NoError(t, err)
		assert.Contains(t, out, "markdown")
	})
}
