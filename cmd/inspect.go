package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/progression/internal/render"
)

func newInspectCmd(opts *options) *cobra.Command {
	var reversed bool
	cmd := &cobra.Command{
		Use:   "inspect EXPR",
		Short: "Show the normalized bounds, step and size of a progression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.parseArgs(args)
			if err != nil {
				return err
			}
			v, err := opts.open(e, opts.kind, reversed)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), opts.format, v.Summary())
		},
	}
	cmd.Flags().BoolVar(&reversed, "reversed", false, "Inspect the reversed progression")
	return cmd
}
