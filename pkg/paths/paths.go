package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/types"
)

const (
	// AppDirName is the directory name used below XDG base directories
	AppDirName = "bonsai"

	// UserConfigFileName is the user configuration file name
	UserConfigFileName = "config.toml"

	// ProjectConfigFileName is the per-project configuration file name
	ProjectConfigFileName = ".bonsai.toml"

	// EnvConfigFile overrides the user configuration file location
	EnvConfigFile = "BONSAI_CONFIG"

	// EnvHome is consulted when the home directory cannot be determined
	EnvHome = "HOME"
)

// UserConfigFile returns the user configuration file path
func UserConfigFile() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigFileName)
}

// ProjectConfigFile returns the project configuration file path for root
func ProjectConfigFile(root string) string {
	return filepath.Join(root, ProjectConfigFileName)
}

// ResolveRoot turns a user supplied path into a clean absolute path
func ResolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ValidateRoot checks that root exists and is a directory
func ValidateRoot(fs types.FS, root string) error {
	return ValidateRootAs(fs, root, root)
}

// ValidateRootAs is ValidateRoot with shown used in messages in place of
// root, typically the path as the user typed it
func ValidateRootAs(fs types.FS, root, shown string) error {
	info, err := fs.Stat(root)
	if err != nil {
		return errors.Newf(errors.ErrRootNotFound, "Path '%s' does not exist", shown).
			WithDetail("path", root).
			WithDetail("cause", err.Error())
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrRootNotDir, "Path '%s' is not a directory", shown).
			WithDetail("path", root)
	}
	return nil
}

// RelativeTo returns target relative to root in slash form. ok is false
// when target lies outside root.
func RelativeTo(root, target string) (rel string, ok bool) {
	r, err := filepath.Rel(root, target)
	if err != nil {
		return "", false
	}
	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(r), true
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
