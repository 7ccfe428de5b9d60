// Package cmd implements the progression command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vipcxj/progression/internal/config"
	"github.com/vipcxj/progression/internal/eval"
	"github.com/vipcxj/progression/internal/logger"
	"github.com/vipcxj/progression/internal/render"
	"github.com/vipcxj/progression/pkg/progression"
)

const shortDesc = "Evaluate, inspect and export arithmetic progressions"

const longDesc = `progression evaluates range expressions such as "1..10 step 4",
"9 downTo 3", "0 until 4", "'a'..'z' step 2" or "[3,9) step 2" over a chosen
integer or character type. It can list the elements, show the normalized
bounds, compare two progressions and print the list as a shell assignment.

Defaults are read from PROGRESSION_* environment variables and overridden by
flags.`

// options is shared by every subcommand of one root.
type options struct {
	cfg     *config.Config
	kind    eval.Kind
	format  render.Format
	verbose bool
	log     *zap.Logger
}

// NewRootCmd builds the command tree with defaults taken from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{
		cfg:    cfg,
		kind:   cfg.Kind,
		format: cfg.Format,
		log:    zap.NewNop(),
	}
	root := &cobra.Command{
		Use:           "progression",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := cfg.LogLevel
			if opts.verbose {
				level = zapcore.DebugLevel
			}
			opts.log = logger.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	flags := root.PersistentFlags()
	enumFlag(root, flags, &opts.kind, "kind", eval.KindStrings(), "element type")
	enumFlag(root, flags, &opts.format, "format", render.FormatStrings(), "output format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information to stderr")

	root.AddCommand(
		newListCmd(opts),
		newInspectCmd(opts),
		newCheckCmd(opts),
		newExportCmd(opts),
		newEnvCmd(opts),
	)
	return root
}

// Execute runs the command line against os.Args and returns the exit code.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	root := NewRootCmd(cfg)
	if err := root.Execute(); err != nil {
		root.PrintErrln(root.ErrPrefix(), err.Error())
		return 1
	}
	return 0
}

// parseArgs joins args with spaces so "1..10 step 2" may be passed unquoted.
func (o *options) parseArgs(args []string) (progression.Expr, error) {
	e, err := progression.ParseExpr(strings.Join(args, " "))
	if err != nil {
		return progression.Expr{}, err
	}
	o.log.Debug("parsed expression",
		zap.String("source", e.Source),
		zap.Stringer("op", e.Op),
		zap.Bool("char", e.HasChar))
	return e, nil
}

func (o *options) open(e progression.Expr, kind eval.Kind, reversed bool) (eval.View, error) {
	v, err := eval.Open(e, kind, reversed)
	if err != nil {
		return nil, err
	}
	s := v.Summary()
	o.log.Debug("built progression",
		zap.String("kind", s.Kind),
		zap.String("progression", s.Progression),
		zap.Uint64("count", s.Count))
	return v, nil
}
