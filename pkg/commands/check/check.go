package check

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/commands/internal"
	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/filter"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// CheckPathsOptions defines the options for the CheckPaths command.
type CheckPathsOptions struct {
	// Config is the effective configuration; Config.Root is the traversal root.
	Config *config.Config

	// FS is the filesystem to read. Defaults to the real filesystem.
	FS types.FS

	// Paths are relative to the root, or absolute.
	Paths []string
}

// CheckPaths reports whether each path would appear in the tree and why.
//
// A path below a hidden directory is hidden too, even when no rule matches
// the path itself; the deciding directory is reported in Via.
func CheckPaths(opts CheckPathsOptions) (*types.CheckResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "CheckPaths").Int("pathCount", len(opts.Paths)).Msg("Executing command")

	cfg := opts.Config
	fsys := internal.FS(opts.FS)

	if err := paths.ValidateRoot(fsys, cfg.Root); err != nil {
		return nil, err
	}

	policy, _ := internal.BuildPolicy(fsys, cfg)

	result := &types.CheckResult{
		Root:    cfg.Root,
		Entries: make([]types.CheckEntry, 0, len(opts.Paths)),
	}
	for _, input := range opts.Paths {
		result.Entries = append(result.Entries, checkPath(fsys, policy, cfg.Root, input))
	}

	log.Info().Str("command", "CheckPaths").Int("pathCount", len(result.Entries)).Msg("Command finished")
	return result, nil
}

func checkPath(fsys types.FS, policy *filter.Policy, root, input string) types.CheckEntry {
	full := input
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, filepath.FromSlash(input))
	}
	full = filepath.Clean(full)

	entry := types.CheckEntry{Input: input}

	if info, err := fsys.Stat(full); err == nil {
		entry.Exists = true
		entry.IsDir = info.IsDir()
	} else {
		entry.IsDir = strings.HasSuffix(input, "/")
	}

	rel, ok := paths.RelativeTo(root, full)
	if !ok {
		rel = filepath.Base(full)
	}
	entry.Rel = rel

	if rel == "." {
		entry.Reason = string(filter.ReasonDefault)
		return entry
	}

	// Ancestors are decided first, as the tree never descends into them
	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		ancestor := strings.Join(parts[:i], "/")
		d := policy.Explain(parts[i-1], ancestor, true)
		if d.Hidden {
			applyDecision(&entry, d)
			entry.Via = ancestor
			return entry
		}
	}

	applyDecision(&entry, policy.Explain(parts[len(parts)-1], rel, entry.IsDir))
	return entry
}

func applyDecision(entry *types.CheckEntry, d filter.Decision) {
	entry.Hidden = d.Hidden
	entry.Reason = string(d.Reason)
	if d.Rule != nil {
		entry.Rule = d.Rule.String()
	}
}
