package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vipcxj/progression/internal/render"
)

var errMismatch = errors.New("progressions differ")

type checkResult struct {
	Expected   string   `json:"expected" yaml:"expected"`
	Actual     string   `json:"actual" yaml:"actual"`
	Equal      bool     `json:"equal" yaml:"equal"`
	Mismatches []string `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

func (r checkResult) Text() string {
	if r.Equal {
		return "ok"
	}
	return strings.Join(r.Mismatches, "\n")
}

// mismatches flattens an errors.Join tree into its messages.
func mismatches(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, mismatches(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check EXPECTED ACTUAL",
		Short: "Verify two progressions have the same bounds, step and elements",
		Long: `check compares first, last, step, the materialized elements and a
lock-step walk of both iterators. It prints "ok" or one line per mismatch and
exits with code 1 when the progressions differ.`,
		Example: `  progression check "1..9 step 4" "1..10 step 4"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := opts.parseArgs(args[:1])
			if err != nil {
				return err
			}
			got, err := opts.parseArgs(args[1:])
			if err != nil {
				return err
			}
			kind := opts.kind.Resolve(want, got)
			wv, err := opts.open(want, kind, false)
			if err != nil {
				return err
			}
			gv, err := opts.open(got, kind, false)
			if err != nil {
				return err
			}

			res := checkResult{Expected: want.Source, Actual: got.Source, Equal: true}
			if err := wv.Compare(gv); err != nil {
				opts.log.Debug("check failed", zap.Error(err))
				res.Equal = false
				res.Mismatches = mismatches(err)
			}
			if err := render.Write(cmd.OutOrStdout(), opts.format, res); err != nil {
				return err
			}
			if !res.Equal {
				return errMismatch
			}
			return nil
		},
	}
}
