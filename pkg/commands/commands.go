// Package commands provides high-level command implementations for bonsai.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the core tree functionality.
//
// Each command is implemented in its own subdirectory:
//   - rendertree/ - RenderTree command
//   - check/      - CheckPaths command
//   - genconfig/  - GenConfig command
//   - internal/   - Shared policy setup
package commands

import (
	"github.com/arthur-debert/bonsai/pkg/commands/check"
	"github.com/arthur-debert/bonsai/pkg/commands/genconfig"
	"github.com/arthur-debert/bonsai/pkg/commands/rendertree"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// RenderTree builds and renders the tree below the configured root.
type RenderTreeOptions = rendertree.RenderTreeOptions

func RenderTree(opts RenderTreeOptions) (*types.TreeResult, error) {
	return rendertree.RenderTree(opts)
}

// CheckPaths explains the visibility of individual paths.
type CheckPathsOptions = check.CheckPathsOptions

func CheckPaths(opts CheckPathsOptions) (*types.CheckResult, error) {
	return check.CheckPaths(opts)
}

// GenConfig outputs the effective configuration or the default template.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
