package rendertree

import (
	"github.com/arthur-debert/bonsai/pkg/commands/internal"
	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/render"
	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/arthur-debert/bonsai/pkg/tree"
	"github.com/arthur-debert/bonsai/pkg/types"
)

// RenderTreeOptions defines the options for the RenderTree command.
type RenderTreeOptions struct {
	// Config is the effective configuration; Config.Root is the traversal root.
	Config *config.Config

	// FS is the filesystem to read. Defaults to the real filesystem.
	FS types.FS

	// Palette colours tree output. Nil renders without colour.
	Palette *style.Palette
}

// RenderTree builds the tree below the configured root and renders it.
func RenderTree(opts RenderTreeOptions) (*types.TreeResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "RenderTree").Str("config", opts.Config.String()).Msg("Executing command")

	cfg := opts.Config
	fsys := internal.FS(opts.FS)

	if err := paths.ValidateRoot(fsys, cfg.Root); err != nil {
		return nil, err
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	policy, ruleFiles := internal.BuildPolicy(fsys, cfg)

	root, err := tree.NewBuilder(fsys, cfg, policy).BuildRoot()
	if err != nil {
		return nil, err
	}

	out, err := render.Render(root, format, render.Options{
		Icons:   cfg.Display.Icons,
		Size:    cfg.Display.Size,
		Palette: opts.Palette,
	})
	if err != nil {
		return nil, err
	}

	dirs, files := root.Count()
	result := &types.TreeResult{
		Root:      root,
		Output:    out,
		RuleFiles: ruleFiles,
		Dirs:      dirs,
		Files:     files,
	}

	log.Info().
		Str("command", "RenderTree").
		Int("dirs", dirs).
		Int("files", files).
		Int("ruleFiles", len(ruleFiles)).
		Msg("Command finished")
	return result, nil
}
