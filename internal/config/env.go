// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the COSMOCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped by value kind (numeric, duration, string, bool).
var envOverrides = []envOverride{
	// Numeric overrides
	{"Z1", []string{"z1"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Z1 = parsed
		}
	}},
	{"Z2", []string{"z2"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Z2 = parsed
		}
	}},
	{"OMEGA_M", []string{"omega-m"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.OmegaM = parsed
		}
	}},
	{"OMEGA_L", []string{"omega-l"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.OmegaL = parsed
		}
	}},
	{"HUBBLE", []string{"hubble"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Hubble = parsed
		}
	}},
	{"TOL", []string{"tol"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.RelTol = parsed
		}
	}},
	{"PANELS", []string{"panels"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Panels = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"FIB", []string{"fib"}, func(c *AppConfig, v string) {
		c.Fib = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},

	// Boolean overrides
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"DETAILS", []string{"d", "details"}, func(c *AppConfig, v string) {
		c.Details = parseBoolEnv(v, c.Details)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with COSMOCALC_):
//   - Z1, Z2, OMEGA_M, OMEGA_L, HUBBLE, TOL, PANELS, TIMEOUT, ALGO, FIB,
//     OUTPUT, METRICS_ADDR, VERBOSE, DETAILS, QUIET, NO_COLOR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
