// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over COSMOCALC_-prefixed
// environment variables, which take priority over the built-in defaults.
package config

import (
	"flag"
	"io"
	"time"

	"github.com/agbru/cosmocalc/internal/cosmology"
	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/quad"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "COSMOCALC_"

// Default values for the tunable settings.
const (
	// DefaultTimeout bounds a full multi-scheme comparison run.
	DefaultTimeout = 1 * time.Minute

	// AlgoAll selects every registered quadrature scheme for comparison.
	AlgoAll = "all"
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// Z1 and Z2 are the redshift bounds of the distance calculation.
	Z1 float64
	Z2 float64

	// OmegaM, OmegaL and Hubble are the cosmological parameters.
	OmegaM float64
	OmegaL float64
	Hubble float64

	// Algo selects the quadrature scheme, or AlgoAll for a comparison run.
	Algo string

	// RelTol is the relative quadrature tolerance; zero selects the
	// scheme default.
	RelTol float64

	// Panels is the concurrent panel count; zero selects the adaptive
	// hardware estimate (see ApplyAdaptivePanels).
	Panels int

	// Timeout bounds the whole calculation.
	Timeout time.Duration

	// Fib, when non-empty, switches the run to Fibonacci evaluation of
	// the given index. Kept as the raw string so non-numeric and
	// non-integral input reaches the evaluator's validation.
	Fib string

	// OutputFile, when non-empty, receives the result as a text file.
	OutputFile string

	// MetricsAddr, when non-empty, enables the Prometheus listener.
	MetricsAddr string

	// Verbose enables the execution-configuration banner and debug logs.
	Verbose bool
	// Details enables the resource-usage report after the calculation.
	Details bool
	// Quiet suppresses progress display and reduces output to the result.
	Quiet bool
	// NoColor disables ANSI colors regardless of terminal support.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, and validates the result.
//
// Parameters:
//   - programName: argv[0], used in usage output.
//   - args: The command-line arguments after the program name.
//   - errWriter: Destination for flag-parsing and usage output.
//   - availableAlgos: The registered quadrature scheme keys.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		Z1:      0,
		Z2:      1,
		OmegaM:  cosmology.DefaultMatterDensity,
		OmegaL:  cosmology.DefaultLambdaDensity,
		Hubble:  cosmology.DefaultHubbleParameter,
		Algo:    AlgoAll,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Float64Var(&cfg.Z1, "z1", cfg.Z1, "Lower redshift bound")
	fs.Float64Var(&cfg.Z2, "z2", cfg.Z2, "Upper redshift bound (must exceed z1)")
	fs.Float64Var(&cfg.OmegaM, "omega-m", cfg.OmegaM, "Matter density fraction ΩM")
	fs.Float64Var(&cfg.OmegaL, "omega-l", cfg.OmegaL, "Dark-energy density fraction ΩΛ")
	fs.Float64Var(&cfg.Hubble, "hubble", cfg.Hubble, "Dimensionless Hubble rate h (H0 = 100h km/s/Mpc)")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "Quadrature scheme to run, or \"all\" for a comparison")
	fs.Float64Var(&cfg.RelTol, "tol", cfg.RelTol, "Relative quadrature tolerance (0 = scheme default)")
	fs.IntVar(&cfg.Panels, "panels", cfg.Panels, "Concurrent integration panels (0 = adaptive)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Calculation timeout")
	fs.StringVar(&cfg.Fib, "fib", cfg.Fib, "Evaluate the Fibonacci number at this index instead")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Write the result to this file (shorthand)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address while running")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose output (shorthand)")
	fs.BoolVar(&cfg.Details, "details", cfg.Details, "Show resource usage after the calculation")
	fs.BoolVar(&cfg.Details, "d", cfg.Details, "Show resource usage (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Minimal output suitable for scripting")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Minimal output (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the resolved configuration for values the rest of the
// application cannot work with. Redshift ordering is deliberately NOT
// checked here: that contract belongs to the distance calculator.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Hubble <= 0 {
		return apperrors.NewConfigError("hubble parameter must be positive, got %g", cfg.Hubble)
	}
	if cfg.OmegaM < 0 {
		return apperrors.NewConfigError("matter density must be non-negative, got %g", cfg.OmegaM)
	}
	if cfg.RelTol < 0 {
		return apperrors.NewConfigError("tolerance must be non-negative, got %g", cfg.RelTol)
	}
	if cfg.Panels < 0 {
		return apperrors.NewConfigError("panels must be non-negative, got %d", cfg.Panels)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.Algo != AlgoAll {
		found := false
		for _, name := range availableAlgos {
			if name == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown quadrature scheme %q (available: all, %s)",
				cfg.Algo, joinNames(availableAlgos))
		}
	}
	return nil
}

// joinNames joins scheme names for error messages.
func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

// ToQuadOptions converts the configuration into quadrature options.
// Zero-valued fields keep the scheme defaults.
func (c AppConfig) ToQuadOptions() quad.Options {
	return quad.Options{
		RelTol: c.RelTol,
		Panels: c.Panels,
	}
}
