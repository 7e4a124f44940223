package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/grid"
)

// presetDTW is the only built-in preset; it is also the default.
const presetDTW = "dynamic-time-warping"

// presets maps accepted preset names to their base options.
var presets = map[string]func() align.Options{
	presetDTW: align.DefaultOptions,
	"dtw":     align.DefaultOptions,
}

// Config is the TOML configuration file layout:
//
//	[strategy]
//	preset         = "dynamic-time-warping"
//	equal_weight   = 1.0
//	unequal_weight = 0.5
//	threshold      = 0.25
//	lower_bound    = -10.0
//	upper_bound    = inf
//	kernel         = "linear"
//
//	[grid]
//	backend   = "dense"
//	max_cells = 1000000
//
// Unset strategy keys keep the preset's value.
type Config struct {
	Strategy StrategyConfig `toml:"strategy"`
	Grid     GridConfig     `toml:"grid"`
}

// StrategyConfig holds cost-model overrides. Nil pointers mean "use preset".
type StrategyConfig struct {
	Preset        string   `toml:"preset"`
	EqualWeight   *float64 `toml:"equal_weight"`
	UnequalWeight *float64 `toml:"unequal_weight"`
	Threshold     *float64 `toml:"threshold"`
	LowerBound    *float64 `toml:"lower_bound"`
	UpperBound    *float64 `toml:"upper_bound"`
	Kernel        string   `toml:"kernel"`
}

// GridConfig selects the grid backend.
type GridConfig struct {
	Backend  string `toml:"backend"`
	MaxCells int    `toml:"max_cells"`
}

// LoadConfig reads a TOML config from path. An empty path yields the zero
// Config, which resolves to the dynamic-time-warping preset on a Dense grid.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrBadInput)
	}

	return cfg, nil
}

// Options resolves the config into strategy options.
func (c Config) Options() (align.Options, error) {
	name := strings.ToLower(strings.TrimSpace(c.Strategy.Preset))
	if name == "" {
		name = presetDTW
	}
	base, ok := presets[name]
	if !ok {
		return align.Options{}, fmt.Errorf("%q: %w", c.Strategy.Preset, ErrUnknownPreset)
	}
	opts := base()

	s := c.Strategy
	setIf(&opts.EqualWeight, s.EqualWeight)
	setIf(&opts.UnequalWeight, s.UnequalWeight)
	setIf(&opts.Threshold, s.Threshold)
	setIf(&opts.Bounds.Lo, s.LowerBound)
	setIf(&opts.Bounds.Hi, s.UpperBound)

	if s.Kernel != "" {
		k, err := align.ParseKernel(s.Kernel)
		if err != nil {
			return align.Options{}, err
		}
		opts.Kernel = k
	}

	factory, err := c.Grid.factory()
	if err != nil {
		return align.Options{}, err
	}
	opts.Grid = factory

	return opts, nil
}

// Build resolves and validates the config into a ready strategy.
func (c Config) Build() (*align.Threshold, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return align.NewThreshold(opts)
}

func (g GridConfig) factory() (grid.Factory, error) {
	switch strings.ToLower(g.Backend) {
	case "", "dense":
		if g.MaxCells > 0 {
			return grid.NewDenseLimited(g.MaxCells), nil
		}

		return grid.NewDense, nil
	case "sparse":
		return grid.NewSparse, nil
	}

	return nil, fmt.Errorf("%q: %w", g.Backend, ErrUnknownBackend)
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
