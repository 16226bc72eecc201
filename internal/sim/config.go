package sim

import (
	"flag"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config represents the run parameters accepted from the environment and
// the command line.
type Config struct {
	Density     float64 `env:"DENSITY"`
	Seed        uint64  `env:"SEED"`
	EdgeLength  int     `env:"EDGE_LENGTH"`
	Minimum     float64 `env:"MINIMUM"`
	Maximum     float64 `env:"MAXIMUM"`
	NewAmount   float64 `env:"NEW_AMOUNT"`
	Rules       string  `env:"RULES"`
	Fraction    int     `env:"FRACTION"`
	CoreDensity float64 `env:"CORE_DENSITY"`
	IntervalMS  int     `env:"INTERVAL_MS"`
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	return &Config{
		Density:     0.1,
		Seed:        111222333444555,
		EdgeLength:  64,
		Minimum:     0.025,
		Maximum:     0.25,
		NewAmount:   0.025,
		Rules:       "6-8/7/4/M",
		Fraction:    10,
		CoreDensity: 0.75,
		IntervalMS:  125,
	}
}

// FromEnv overlays CA3D_-prefixed environment variables onto the config.
func (c *Config) FromEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "CA3D_"}); err != nil {
		return errors.Wrap(err, "parsing environment configuration")
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Density, "density", c.Density, "population density for a full fill")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "initial seed for the pseudorandom number generator")
	fs.IntVar(&c.EdgeLength, "edge-length", c.EdgeLength, "lattice edge length (clamped to 16..96)")
	fs.Float64Var(&c.Minimum, "minimum", c.Minimum, "population fraction below which growth re-enables")
	fs.Float64Var(&c.Maximum, "maximum", c.Maximum, "population fraction above which growth disables")
	fs.Float64Var(&c.NewAmount, "new-amount", c.NewAmount, "density for full fills triggered at a keystroke")
	fs.StringVar(&c.Rules, "rules", c.Rules, "rule string, SURVIVE/SPAWN/STATES/NEIGHBORHOOD")
	fs.IntVar(&c.Fraction, "divisor", c.Fraction, "size divisor for the centered core region")
	fs.Float64Var(&c.CoreDensity, "core-density", c.CoreDensity, "population density for a core fill")
	fs.IntVar(&c.IntervalMS, "interval-ms", c.IntervalMS, "milliseconds between generations")
}

// Normalize clamps values into their valid domains.
func (c *Config) Normalize() {
	clamp01 := func(v *float64) {
		if *v < 0 {
			*v = 0
		}
		if *v > 1 {
			*v = 1
		}
	}
	clamp01(&c.Density)
	clamp01(&c.Minimum)
	clamp01(&c.Maximum)
	clamp01(&c.NewAmount)
	clamp01(&c.CoreDensity)
	if c.Fraction < 1 {
		c.Fraction = 1
	}
	if c.IntervalMS < 0 {
		c.IntervalMS = 0
	}
}
