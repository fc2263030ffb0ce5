package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/bonsai/pkg/filesystem"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/spf13/afero"
)

// Op names a filesystem operation for error injection
type Op string

const (
	OpStat     Op = "stat"
	OpLstat    Op = "lstat"
	OpReadFile Op = "readfile"
	OpReadDir  Op = "readdir"
	OpWrite    Op = "write"
	OpMkdir    Op = "mkdir"
)

// TestFS is an in-memory types.FS with error injection
type TestFS struct {
	types.FS

	// Afero exposes the backing filesystem for direct setup
	Afero afero.Fs

	mu         sync.RWMutex
	errorPaths map[Op]map[string]error
	calls      map[Op]int
}

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() *TestFS {
	mem := afero.NewMemMapFs()
	return &TestFS{
		FS:         filesystem.NewAferoFS(mem),
		Afero:      mem,
		errorPaths: make(map[Op]map[string]error),
		calls:      make(map[Op]int),
	}
}

// WithError makes op fail with err for path
func (t *TestFS) WithError(op Op, path string, err error) *TestFS {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.errorPaths[op] == nil {
		t.errorPaths[op] = make(map[string]error)
	}
	t.errorPaths[op][filepath.Clean(path)] = err
	return t
}

// Calls returns how many times op was invoked
func (t *TestFS) Calls(op Op) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.calls[op]
}

func (t *TestFS) check(op Op, path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls[op]++
	if err, ok := t.errorPaths[op][filepath.Clean(path)]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (t *TestFS) Stat(name string) (fs.FileInfo, error) {
	if err := t.check(OpStat, name); err != nil {
		return nil, err
	}
	return t.FS.Stat(name)
}

func (t *TestFS) Lstat(name string) (fs.FileInfo, error) {
	if err := t.check(OpLstat, name); err != nil {
		return nil, err
	}
	return t.FS.Lstat(name)
}

func (t *TestFS) ReadFile(name string) ([]byte, error) {
	if err := t.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return t.FS.ReadFile(name)
}

func (t *TestFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := t.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return t.FS.ReadDir(name)
}

func (t *TestFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := t.check(OpWrite, name); err != nil {
		return err
	}
	return t.FS.WriteFile(name, data, perm)
}

func (t *TestFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := t.check(OpMkdir, path); err != nil {
		return err
	}
	return t.FS.MkdirAll(path, perm)
}
