// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dir), afero MemMapFs
// PURPOSE: Test both types.FS implementations behave the same

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bonsai/pkg/filesystem"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fs types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	linfo, err := fs.Lstat(testFile)
	require.NoError(t, err)
	assert.False(t, linfo.IsDir())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub", entries[0].Name())
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "test.txt", entries[1].Name())

	_, err = fs.ReadFile(subDir)
	assert.Error(t, err)

	_, err = fs.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	fs := filesystem.NewOS()
	assert.NotNil(t, fs)
	exerciseFS(t, fs, t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0755))
	exerciseFS(t, filesystem.NewAferoFS(mem), "/work")
}
