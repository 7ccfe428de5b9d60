package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vipcxj/progression/internal/render"
	"github.com/vipcxj/progression/internal/shell"
)

func newExportCmd(opts *options) *cobra.Command {
	sep := render.SeparatorSpace
	shellType := opts.cfg.Shell
	var (
		varName  string
		persist  bool
		reversed bool
	)
	cmd := &cobra.Command{
		Use:   "export EXPR",
		Short: "Print a shell statement assigning the elements to a variable",
		Long: `export materializes the progression, joins the elements with --sep and
prints an assignment for the chosen shell, ready to be eval'ed or sourced:

  eval "$(progression export --var ports 8000..8003)"

With --shell auto the calling shell is detected from the parent processes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := shell.VarName(varName)
			if err != nil {
				return err
			}
			e, err := opts.parseArgs(args)
			if err != nil {
				return err
			}
			v, err := opts.open(e, opts.kind, reversed)
			if err != nil {
				return err
			}
			texts, err := v.Strings(opts.cfg.MaxElements)
			if err != nil {
				return err
			}
			t, err := shell.Resolve(shellType)
			if err != nil {
				return err
			}
			opts.log.Debug("exporting", zap.String("var", name), zap.Stringer("shell", t))
			stmt, err := shell.Assignment(t, name, render.Join(sep, texts), persist)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), stmt)
			return err
		},
	}
	cmd.Flags().StringVar(&varName, "var", "", "Variable name, upper-cased with '-' mapped to '_'")
	_ = cmd.MarkFlagRequired("var")
	enumFlag(cmd, cmd.Flags(), &shellType, "shell", shell.ShellTypeStrings(), "target shell")
	enumFlag(cmd, cmd.Flags(), &sep, "sep", render.SeparatorStrings(), "element separator")
	cmd.Flags().BoolVar(&persist, "export", false, "Make the variable outlive the statement (export, user environment, setx)")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "Iterate from last to first")
	return cmd
}
