package main

import (
	"github.com/spf13/cobra"

	"github.com/sheetpick/sheetpick/pkg/commands/genconfig"
)

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			effective, _ := cmd.Flags().GetBool("effective")
			cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")

			result, err := genconfig.Generate(genconfig.Options{
				Write:      write,
				Effective:  effective,
				ConfigFile: cfgFile,
			})
			if err != nil {
				return err
			}

			switch {
			case result.Written:
				cmd.Printf(MsgConfigWritten, result.Path)
			case result.Skipped:
				cmd.Printf(MsgConfigExists, result.Path)
			default:
				cmd.Print(result.Content)
			}
			return nil
		},
	}

	cmd.Flags().Bool("write", false, MsgFlagWrite)
	cmd.Flags().Bool("effective", false, MsgFlagEffective)

	return cmd
}
