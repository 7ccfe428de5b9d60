package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/progression/internal/render"
)

func newListCmd(opts *options) *cobra.Command {
	sep := opts.cfg.Separator
	var reversed bool
	var limit uint64
	cmd := &cobra.Command{
		Use:   "list EXPR",
		Short: "Print the elements of a progression",
		Example: `  progression list 1..10 step 4
  progression list --format json 'a'..'e'
  progression list --sep newline 9 downTo 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.parseArgs(args)
			if err != nil {
				return err
			}
			v, err := opts.open(e, opts.kind, reversed)
			if err != nil {
				return err
			}
			if opts.format == render.FormatText {
				texts, err := v.Strings(limit)
				if err != nil {
					return err
				}
				return render.List(cmd.OutOrStdout(), opts.format, sep, nil, texts)
			}
			values, err := v.Values(limit)
			if err != nil {
				return err
			}
			return render.List(cmd.OutOrStdout(), opts.format, sep, values, nil)
		},
	}
	enumFlag(cmd, cmd.Flags(), &sep, "sep", render.SeparatorStrings(), "element separator for text output")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "Iterate from last to first")
	cmd.Flags().Uint64Var(&limit, "limit", opts.cfg.MaxElements, "Refuse to print more elements than this, 0 for no limit")
	return cmd
}
