package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/cosmocalc/internal/progress"
)

// CalculationResult holds the outcome of one quadrature scheme: the
// computed comoving distance, how long the scheme took, and any error.
type CalculationResult struct {
	Name     string
	Value    float64
	Duration time.Duration
	Err      error
}

// PresentationOptions carries the display-relevant parts of the run
// configuration so presenters do not depend on the config package.
type PresentationOptions struct {
	Z1      float64
	Z2      float64
	Verbose bool
	Details bool
	Quiet   bool
}

// ProgressReporter consumes aggregated progress updates from the running
// schemes and renders them somewhere (spinner, log line, nothing).
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to the ProgressReporter interface.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without rendering
// anything. Used in quiet mode and in tests.
type NullProgressReporter struct{}

// DisplayProgress consumes all updates until the channel closes.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders calculation results for the user.
type ResultPresenter interface {
	// PresentComparisonTable renders the per-scheme comparison table.
	PresentComparisonTable(results []CalculationResult, opts PresentationOptions, out io.Writer)
	// PresentResult renders the final agreed-upon result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler maps a calculation error to a process exit code, rendering
// an explanation along the way.
type ErrorHandler interface {
	HandleError(err error, elapsed time.Duration, out io.Writer) int
}

// Presenter is the full rendering surface the orchestrator needs.
type Presenter interface {
	ResultPresenter
	ErrorHandler
}
