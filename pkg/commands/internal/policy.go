// Package internal holds setup shared by the bonsai commands.
package internal

import (
	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/filesystem"
	"github.com/arthur-debert/bonsai/pkg/filter"
	"github.com/arthur-debert/bonsai/pkg/rules"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// FS returns fsys, or the real filesystem when fsys is nil
func FS(fsys types.FS) types.FS {
	if fsys == nil {
		return filesystem.NewOS()
	}
	return fsys
}

// BuildPolicy loads rule files from cfg.Root upwards when rule files are
// respected, and combines them with the custom patterns of cfg. It returns
// the policy and the rule files that were read.
func BuildPolicy(fsys types.FS, cfg *config.Config) (*filter.Policy, []string) {
	var loaded *rules.RuleSet
	var files []string

	if cfg.Filter.RespectGitignore {
		result := rules.NewLoader(fsys, cfg.Filter.RuleFile).Load(cfg.Root)
		loaded = result.Rules
		files = result.Files
	}

	return filter.NewPolicy(loaded, cfg), files
}
