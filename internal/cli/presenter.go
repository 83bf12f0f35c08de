package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/format"
	"github.com/agbru/cosmocalc/internal/orchestration"
	"github.com/agbru/cosmocalc/internal/progress"
	"github.com/agbru/cosmocalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps DisplayProgress to provide a spinner and progress bar
// during calculations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements the orchestration presentation interfaces
// for the command line, providing formatted, colorized output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
	_ orchestration.Presenter       = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with scheme
// names, computed distances, durations, and status in a tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment.
	maxNameLen := 6     // "Scheme" header length
	maxValueLen := 15   // "Distance (Mpc/h)" is wider, but values dominate
	maxDurationLen := 8 // "Duration" header length
	values := make([]string, len(results))
	durations := make([]string, len(results))
	for i, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		value := "-"
		if res.Err == nil {
			value = fmt.Sprintf("%.9f", res.Value)
		}
		values[i] = value
		if len(value) > maxValueLen {
			maxValueLen = len(value)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		durations[i] = duration
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sScheme%s%s   %sDistance (Mpc/h)%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxValueLen-16),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for i, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorInfo(), values[i], ui.ColorReset(), padRight("", maxValueLen-len(values[i])),
			ui.ColorWarning(), durations[i], ui.ColorReset(), padRight("", maxDurationLen-len(durations[i])),
			status)
	}
}

// padRight appends spaces to s up to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final comoving distance. In quiet mode it
// prints only the bare value, suitable for scripting.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprintf(out, "%.9f\n", result.Value)
		return
	}

	body := fmt.Sprintf("Comoving distance D_C(%g, %g)\n\n%s%.9f Mpc/h%s\n\nScheme: %s\nDuration: %s",
		opts.Z1, opts.Z2,
		ui.ColorBold(), result.Value, ui.ColorReset(),
		result.Name,
		format.FormatExecutionDuration(result.Duration))
	fmt.Fprintln(out, ui.ResultBoxStyle().Render(body))
}

// FormatDuration formats a duration using the shared duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError renders a calculation error and maps it to the process exit
// code: validation and configuration problems exit 4, timeouts exit 2,
// cancellation exits 130, anything else exits 1.
func (CLIResultPresenter) HandleError(err error, elapsed time.Duration, out io.Writer) int {
	var (
		validationErr apperrors.ValidationError
		configErr     apperrors.ConfigError
		timeoutErr    apperrors.TimeoutError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &configErr):
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
		return apperrors.ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout after %s:%s %v\n", ui.ColorError(), format.FormatExecutionDuration(elapsed), ui.ColorReset(), err)
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled after %s.%s\n", ui.ColorWarning(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
		return apperrors.ExitErrorGeneric
	}
}
