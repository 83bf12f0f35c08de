package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/cosmocalc/internal/config"
	"github.com/agbru/cosmocalc/internal/quad"
	"github.com/agbru/cosmocalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration: the
// redshift interval, cosmological parameters, tolerance, timeout, and the
// runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sD_C(%g, %g)%s with a timeout of %s%s%s.\n",
		ui.ColorSecondary(), cfg.Z1, cfg.Z2, ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Cosmology: ΩM=%s%g%s, ΩΛ=%s%g%s, h=%s%g%s.\n",
		ui.ColorInfo(), cfg.OmegaM, ui.ColorReset(),
		ui.ColorInfo(), cfg.OmegaL, ui.ColorReset(),
		ui.ColorInfo(), cfg.Hubble, ui.ColorReset())
	tol := cfg.RelTol
	if tol == 0 {
		tol = quad.DefaultRelTol
	}
	fmt.Fprintf(out, "Quadrature: relative tolerance %s%g%s, %s%d%s panels.\n",
		ui.ColorInfo(), tol, ui.ColorReset(),
		ui.ColorInfo(), cfg.Panels, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorInfo(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorInfo(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single scheme vs comparison).
func PrintExecutionMode(integrators []quad.Integrator, out io.Writer) {
	var modeDesc string
	if len(integrators) > 1 {
		modeDesc = "Parallel comparison of all quadrature schemes"
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s scheme",
			ui.ColorSuccess(), integrators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
