package cmd

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type textTarget interface {
	encoding.TextUnmarshaler
	fmt.Stringer
}

// textValue adapts an enumer generated type to pflag.Value.
type textValue struct {
	target textTarget
	name   string
}

func (v *textValue) String() string { return v.target.String() }

func (v *textValue) Set(s string) error { return v.target.UnmarshalText([]byte(s)) }

func (v *textValue) Type() string { return v.name }

// enumFlag registers target as a flag restricted to choices, with matching
// shell completions.
func enumFlag(cmd *cobra.Command, flags *pflag.FlagSet, target textTarget, name string, choices []string, usage string) {
	flags.Var(&textValue{target: target, name: name}, name, fmt.Sprintf("%s, one of %s", usage, strings.Join(choices, "|")))
	_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(choices, cobra.ShellCompDirectiveNoFileComp))
}
