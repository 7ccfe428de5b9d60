package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/progression/internal/config"
	"github.com/vipcxj/progression/internal/render"
)

type variables []config.Variable

func (vs variables) Text() string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s=%s", v.Key, v.Default)
		if v.Value != "" {
			fmt.Fprintf(&b, " (set: %s)", v.Value)
		}
	}
	return b.String()
}

func newEnvCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables providing default flag values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := config.Variables()
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), opts.format, variables(vars))
		},
	}
}
