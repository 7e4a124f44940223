// Package cli implements the lvalign command-line interface.
//
// Commands:
//   - align:   align one pair of sequences and print a JSON report
//   - batch:   align an array of pairs concurrently
//   - inspect: print the filled grid as text
//
// The strategy comes from an optional TOML file (--config) overridden by
// flags. Logs go to stderr via charmbracelet/log; --verbose enables debug.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/align"
)

const appName = "lvalign"

// version is injected with -ldflags "-X .../internal/cli.version=v1.2.3".
var version = "dev"

// globalFlags holds persistent flag values shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool

	preset    string
	equal     float64
	unequal   float64
	threshold float64
	lo, hi    float64
	kernel    string
	backend   string
	maxCells  int
}

// strategy loads the config file and applies every flag the user set.
func (f *globalFlags) strategy(cmd *cobra.Command) (*align.Threshold, error) {
	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("preset") {
		cfg.Strategy.Preset = f.preset
	}
	if fl.Changed("equal") {
		cfg.Strategy.EqualWeight = &f.equal
	}
	if fl.Changed("unequal") {
		cfg.Strategy.UnequalWeight = &f.unequal
	}
	if fl.Changed("threshold") {
		cfg.Strategy.Threshold = &f.threshold
	}
	if fl.Changed("lo") {
		cfg.Strategy.LowerBound = &f.lo
	}
	if fl.Changed("hi") {
		cfg.Strategy.UpperBound = &f.hi
	}
	if fl.Changed("kernel") {
		cfg.Strategy.Kernel = f.kernel
	}
	if fl.Changed("backend") {
		cfg.Grid.Backend = f.backend
	}
	if fl.Changed("max-cells") {
		cfg.Grid.MaxCells = f.maxCells
	}

	return cfg.Build()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	f := &globalFlags{}
	root := &cobra.Command{
		Use:          appName,
		Short:        "lvalign aligns real-valued sequences",
		Long:         `lvalign computes threshold-weighted DTW-style alignments between sequences of real numbers and reports the best score and where traceback should start.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML config file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&f.preset, "preset", presetDTW, "strategy preset")
	pf.Float64Var(&f.equal, "equal", 1, "weight for distances at or above the threshold")
	pf.Float64Var(&f.unequal, "unequal", 1, "weight for distances below the threshold")
	pf.Float64Var(&f.threshold, "threshold", 0, "distance threshold")
	pf.Float64Var(&f.lo, "lo", 0, "lower score bound")
	pf.Float64Var(&f.hi, "hi", 0, "upper score bound (accepts inf)")
	pf.StringVar(&f.kernel, "kernel", "linear", "distance kernel: linear or quadratic")
	pf.StringVar(&f.backend, "backend", "dense", "grid backend: dense or sparse")
	pf.IntVar(&f.maxCells, "max-cells", 0, "refuse dense grids larger than this (0 = default limit)")

	root.AddCommand(newAlignCmd(f))
	root.AddCommand(newBatchCmd(f))
	root.AddCommand(newInspectCmd(f))

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
