package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/cosmocalc/internal/config"
	"github.com/agbru/cosmocalc/internal/quad"
	"github.com/agbru/cosmocalc/internal/ui"
)

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	ui.InitTheme(true)

	var buf bytes.Buffer
	cfg := config.AppConfig{
		Z1:      0,
		Z2:      1,
		OmegaM:  0.3,
		OmegaL:  0.7,
		Hubble:  0.7,
		Timeout: time.Minute,
		Panels:  4,
	}

	PrintExecutionConfig(cfg, &buf)
	output := buf.String()

	for _, s := range []string{"Execution Configuration", "D_C(0, 1)", "ΩM=0.3", "h=0.7", "panels"} {
		if !strings.Contains(output, s) {
			t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
		}
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	ui.InitTheme(true)
	factory := quad.NewDefaultFactory()

	t.Run("Single scheme mode", func(t *testing.T) {
		var buf bytes.Buffer
		integ, err := factory.Get(quad.SchemeKronrod)
		if err != nil {
			t.Fatalf("factory.Get: %v", err)
		}

		PrintExecutionMode([]quad.Integrator{integ}, &buf)

		output := buf.String()
		if !strings.Contains(output, "Single calculation") {
			t.Errorf("Expected single-scheme mode description, got:\n%s", output)
		}
	})

	t.Run("Comparison mode", func(t *testing.T) {
		var buf bytes.Buffer

		PrintExecutionMode(factory.GetAll(), &buf)

		output := buf.String()
		if !strings.Contains(output, "Parallel comparison") {
			t.Errorf("Expected comparison mode description, got:\n%s", output)
		}
	})
}
