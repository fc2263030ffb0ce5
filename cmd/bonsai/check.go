package bonsai

import (
	"fmt"

	"github.com/arthur-debert/bonsai/pkg/commands"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/spf13/cobra"
)

func newCheckCmd(fsys types.FS, flags *treeFlags) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "check <paths...>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fsys, flags, root)
			if err != nil {
				return err
			}

			result, err := commands.CheckPaths(commands.CheckPathsOptions{
				Config: cfg,
				FS:     fsys,
				Paths:  args,
			})
			if err != nil {
				return err
			}

			for _, e := range result.Entries {
				fmt.Fprintln(cmd.OutOrStdout(), formatCheckEntry(e))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", MsgFlagCheckRoot)

	return cmd
}

func formatCheckEntry(e types.CheckEntry) string {
	state := "shown"
	if e.Hidden {
		state = "hidden"
	}

	rule := e.Rule
	if rule == "" {
		rule = "-"
	}

	line := fmt.Sprintf(MsgCheckLine, state, e.Reason, rule, e.Input)
	if e.Via != "" {
		line += fmt.Sprintf(MsgCheckVia, e.Via)
	}
	return line
}
