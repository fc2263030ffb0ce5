package bonsai

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bonsai/pkg/commands"
	"github.com/arthur-debert/bonsai/pkg/types"
	"github.com/spf13/cobra"
)

func newConfigCmd(fsys types.FS, flags *treeFlags) *cobra.Command {
	var (
		template bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			cfg, err := loadConfig(cmd, fsys, flags, target)
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Config:   cfg,
				Template: template,
				Write:    write,
				FS:       fsys,
			})
			if err != nil {
				return err
			}

			if write {
				for _, f := range result.FilesWritten {
					fmt.Fprintln(cmd.OutOrStdout(), formatSuccess(fmt.Sprintf(MsgOutputWritten, f)))
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(result.ConfigContent, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
