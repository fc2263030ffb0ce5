package testutil

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files and directories below root. Keys are slash
// separated paths relative to root; a key ending in "/" creates an empty
// directory, any other key a file holding the value.
func WriteTree(t *testing.T, fs *TestFS, root string, entries map[string]string) {
	t.Helper()

	require.NoError(t, fs.Afero.MkdirAll(root, 0755))
	for rel, content := range entries {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(rel, "/")))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fs.Afero.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fs.Afero.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(fs.Afero, full, []byte(content), 0644))
	}
}

// Paths collects the slash separated path of every node below root,
// relative to root
func Paths(root *types.TreeNode) []string {
	var paths []string
	var walk func(n *types.TreeNode, prefix string)
	walk = func(n *types.TreeNode, prefix string) {
		for _, c := range n.Children {
			p := c.Name
			if prefix != "" {
				p = prefix + "/" + c.Name
			}
			paths = append(paths, p)
			walk(c, p)
		}
	}
	walk(root, "")
	return paths
}

// SilenceLogs points the global logger at io.Discard at warn level, so
// package tests stay quiet. Call it from TestMain.
func SilenceLogs() {
	logging.SetupLoggerWithWriter(io.Discard, 0)
}
