package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/cosmocalc/internal/errors"
)

var testAlgos = []string{"kronrod", "romberg", "simpson"}

// parse is a shorthand running ParseConfig with a discarded error writer.
func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("cosmocalc", args, &buf, testAlgos)
}

// TestParseConfig_Defaults verifies the built-in defaults.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Z1 != 0 || cfg.Z2 != 1 {
		t.Errorf("default bounds = (%g, %g), want (0, 1)", cfg.Z1, cfg.Z2)
	}
	if cfg.OmegaM != 0.3 || cfg.OmegaL != 0.7 || cfg.Hubble != 0.7 {
		t.Errorf("default cosmology = (%g, %g, %g)", cfg.OmegaM, cfg.OmegaL, cfg.Hubble)
	}
	if cfg.Algo != AlgoAll {
		t.Errorf("default algo = %q, want %q", cfg.Algo, AlgoAll)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("default timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
}

// TestParseConfig_Flags tests explicit flag values, including shorthands.
func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t,
		"-z1", "0.5", "-z2", "2", "-omega-m", "0.25", "-omega-l", "0.75",
		"-hubble", "0.68", "-algo", "kronrod", "-tol", "1e-6",
		"-panels", "4", "-timeout", "30s", "-q", "-o", "out.txt")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Z1 != 0.5 || cfg.Z2 != 2 {
		t.Errorf("bounds = (%g, %g)", cfg.Z1, cfg.Z2)
	}
	if cfg.Algo != "kronrod" {
		t.Errorf("Algo = %q", cfg.Algo)
	}
	if cfg.RelTol != 1e-6 || cfg.Panels != 4 {
		t.Errorf("RelTol = %g, Panels = %d", cfg.RelTol, cfg.Panels)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("shorthand -q should set Quiet")
	}
	if cfg.OutputFile != "out.txt" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
}

// TestParseConfig_Validation tests rejection of unusable values.
func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero hubble", []string{"-hubble", "0"}},
		{"negative hubble", []string{"-hubble", "-0.7"}},
		{"negative matter density", []string{"-omega-m", "-0.1"}},
		{"negative tolerance", []string{"-tol", "-1e-8"}},
		{"negative panels", []string{"-panels", "-2"}},
		{"zero timeout", []string{"-timeout", "0s"}},
		{"unknown scheme", []string{"-algo", "trapezoid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if err == nil {
				t.Fatal("expected a config error")
			}
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("err = %T (%v), want ConfigError", err, err)
			}
		})
	}
}

// TestParseConfig_RedshiftOrderingNotValidated verifies that reversed bounds
// pass config validation: the ordering contract belongs to the distance
// calculator.
func TestParseConfig_RedshiftOrderingNotValidated(t *testing.T) {
	if _, err := parse(t, "-z1", "1", "-z2", "0"); err != nil {
		t.Errorf("ParseConfig should not validate redshift ordering, got %v", err)
	}
}

// TestParseConfig_Help tests that -h surfaces flag.ErrHelp.
func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

// TestEnvOverrides tests the flags > env > defaults priority.
func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag unset", func(t *testing.T) {
		t.Setenv(EnvPrefix+"Z2", "3.5")
		t.Setenv(EnvPrefix+"ALGO", "romberg")
		t.Setenv(EnvPrefix+"QUIET", "yes")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Z2 != 3.5 {
			t.Errorf("Z2 = %g, want 3.5 from env", cfg.Z2)
		}
		if cfg.Algo != "romberg" {
			t.Errorf("Algo = %q, want romberg from env", cfg.Algo)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"Z2", "3.5")

		cfg, err := parse(t, "-z2", "2")
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Z2 != 2 {
			t.Errorf("Z2 = %g, explicit flag should win over env", cfg.Z2)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"Z2", "not-a-number")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Z2 != 1 {
			t.Errorf("Z2 = %g, want the default after an unparsable env value", cfg.Z2)
		}
	})

	t.Run("shorthand flag suppresses env for both forms", func(t *testing.T) {
		t.Setenv(EnvPrefix+"OUTPUT", "env.txt")

		cfg, err := parse(t, "-o", "flag.txt")
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.OutputFile != "flag.txt" {
			t.Errorf("OutputFile = %q, want the flag value", cfg.OutputFile)
		}
	})
}

// TestParseBoolEnv tests boolean value parsing.
func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}

// TestApplyAdaptivePanels tests the adaptive fallback.
func TestApplyAdaptivePanels(t *testing.T) {
	t.Run("fills zero value", func(t *testing.T) {
		cfg := ApplyAdaptivePanels(AppConfig{})
		if cfg.Panels < 1 || cfg.Panels > maxAdaptivePanels {
			t.Errorf("Panels = %d, want within [1, %d]", cfg.Panels, maxAdaptivePanels)
		}
	})

	t.Run("preserves explicit value", func(t *testing.T) {
		cfg := ApplyAdaptivePanels(AppConfig{Panels: 3})
		if cfg.Panels != 3 {
			t.Errorf("Panels = %d, want 3", cfg.Panels)
		}
	})
}

// TestToQuadOptions tests the conversion to quadrature options.
func TestToQuadOptions(t *testing.T) {
	opts := AppConfig{RelTol: 1e-6, Panels: 8}.ToQuadOptions()
	if opts.RelTol != 1e-6 || opts.Panels != 8 {
		t.Errorf("ToQuadOptions() = %+v", opts)
	}
}
