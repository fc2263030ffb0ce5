package bonsai

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bonsai/internal/version"
	"github.com/arthur-debert/bonsai/pkg/commands"
	"github.com/arthur-debert/bonsai/pkg/config"
	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/filesystem"
	"github.com/arthur-debert/bonsai/pkg/logging"
	"github.com/arthur-debert/bonsai/pkg/output"
	"github.com/arthur-debert/bonsai/pkg/paths"
	"github.com/arthur-debert/bonsai/pkg/style"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// treeFlags holds the flag values shared by every command
type treeFlags struct {
	verbosity   int
	maxDepth    int
	showHidden  bool
	icons       bool
	size        bool
	noColor     bool
	noGitignore bool
	ignore      []string
	include     []string
	output      string
	format      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys types.FS) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &treeFlags{}

	rootCmd := &cobra.Command{
		Use:     "bonsai [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return runTree(cmd, fsys, flags, target)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.IntVarP(&flags.maxDepth, "max-depth", "d", -1, MsgFlagMaxDepth)
	pf.BoolVarP(&flags.showHidden, "show-hidden", "a", false, MsgFlagShowHidden)
	pf.BoolVarP(&flags.icons, "icons", "i", false, MsgFlagIcons)
	pf.BoolVarP(&flags.size, "size", "s", false, MsgFlagSize)
	pf.BoolVar(&flags.noColor, "no-color", false, MsgFlagNoColor)
	pf.BoolVar(&flags.noGitignore, "no-gitignore", false, MsgFlagNoGitignore)
	pf.StringArrayVar(&flags.ignore, "ignore", nil, MsgFlagIgnore)
	pf.StringArrayVar(&flags.include, "include", nil, MsgFlagInclude)
	pf.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	pf.StringVarP(&flags.format, "format", "f", "tree", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(fsys, flags))
	rootCmd.AddCommand(newConfigCmd(fsys, flags))
	rootCmd.AddCommand(newCompletionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// loadConfig resolves and validates target, then layers the configuration
// for it with the flags the user set explicitly
func loadConfig(cmd *cobra.Command, fsys types.FS, flags *treeFlags, target string) (*config.Config, error) {
	root, err := paths.ResolveRoot(target)
	if err != nil {
		return nil, err
	}
	if err := paths.ValidateRootAs(fsys, root, target); err != nil {
		return nil, err
	}

	overrides, appends := flags.overrides(cmd)
	return config.Load(config.LoadOptions{
		Root:      root,
		Overrides: overrides,
		Appends:   appends,
	})
}

// overrides maps the explicitly set flags to configuration keys
func (f *treeFlags) overrides(cmd *cobra.Command) (map[string]interface{}, map[string][]string) {
	set := cmd.Flags().Changed
	overrides := map[string]interface{}{}

	if set("max-depth") {
		overrides["traversal.max_depth"] = f.maxDepth
	}
	if set("show-hidden") {
		overrides["display.show_hidden"] = f.showHidden
	}
	if set("icons") {
		overrides["display.icons"] = f.icons
	}
	if set("size") {
		overrides["display.size"] = f.size
	}
	if set("no-color") {
		overrides["display.color"] = !f.noColor
	}
	if set("no-gitignore") {
		overrides["filter.respect_gitignore"] = !f.noGitignore
	}
	if set("output") {
		overrides["output.file"] = f.output
	}
	if set("format") {
		overrides["output.format"] = f.format
	}

	appends := map[string][]string{
		"filter.ignore":  f.ignore,
		"filter.include": f.include,
	}
	return overrides, appends
}

func runTree(cmd *cobra.Command, fsys types.FS, flags *treeFlags, target string) error {
	logger := logging.GetLogger("cmd.tree")

	cfg, err := loadConfig(cmd, fsys, flags, target)
	if err != nil {
		return err
	}

	if cmd.Context().Err() != nil {
		return errors.New(errors.ErrInternal, MsgInterrupted)
	}

	color := cfg.Output.File == "" && style.ColorEnabled(stdoutFile(cmd), cfg.Display.Color)
	logger.Debug().Bool("color", color).Msg("Color decided")

	result, err := commands.RenderTree(commands.RenderTreeOptions{
		Config:  cfg,
		FS:      fsys,
		Palette: style.NewPalette(cmd.OutOrStdout(), color),
	})
	if err != nil {
		return err
	}

	dest, err := output.NewWriter(fsys, cmd.OutOrStdout()).Write(result.Output, cfg.Output.File)
	if err != nil {
		return err
	}
	if dest != "" {
		fmt.Fprintln(cmd.OutOrStdout(), formatSuccess(fmt.Sprintf(MsgOutputWritten, cfg.Output.File)))
	}

	return nil
}

// stdoutFile returns the command's output when it is a file, so that
// terminal detection looks at what is actually written to
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
