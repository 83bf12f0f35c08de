package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/agbru/cosmocalc/internal/cli"
	"github.com/agbru/cosmocalc/internal/cosmology"
	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/fibonacci"
	"github.com/agbru/cosmocalc/internal/metrics"
	"github.com/agbru/cosmocalc/internal/orchestration"
	"github.com/agbru/cosmocalc/internal/sysmon"
	"github.com/agbru/cosmocalc/internal/ui"
)

// runCalculate orchestrates the comoving-distance calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	cosmo := cosmology.New(
		cosmology.WithMatterDensity(a.Config.OmegaM),
		cosmology.WithLambdaDensity(a.Config.OmegaL),
		cosmology.WithHubbleParameter(a.Config.Hubble),
	)

	integrators := orchestration.GetIntegratorsToRun(a.Config, a.Factory)
	if len(integrators) == 0 {
		fmt.Fprintf(a.ErrWriter, "No quadrature scheme matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(integrators, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	memBefore := collector.Snapshot()
	sysmon.Sample() // prime the CPU delta baseline

	results := orchestration.ExecuteCalculations(ctx, cosmo, integrators, a.Config, progressReporter, progressOut)

	a.recordCalculationMetrics(results)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)

	if a.Config.Details && !a.Config.Quiet {
		cli.DisplayResourceReport(metrics.Delta(memBefore, collector.Snapshot()), sysmon.Sample(), out)
	}

	return exitCode
}

// recordCalculationMetrics publishes per-scheme outcomes to the Prometheus
// registry when the metrics listener is enabled.
func (a *Application) recordCalculationMetrics(results []orchestration.CalculationResult) {
	if a.metrics == nil {
		return
	}
	for _, res := range results {
		status := "success"
		if res.Err != nil {
			status = "failure"
		}
		a.metrics.ObserveCalculation(res.Name, status, res.Duration)
	}
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	presOpts := orchestration.PresentationOptions{
		Z1:      a.Config.Z1,
		Z2:      a.Config.Z2,
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if bestResult := findBestResult(results); bestResult != nil {
			if err := a.saveResult(bestResult, outputCfg); err != nil {
				return apperrors.ExitErrorGeneric
			}
			if !outputCfg.Quiet {
				fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
					ui.ColorSuccess(), ui.ColorInfo(), outputCfg.OutputFile, ui.ColorReset())
			}
		}
	}

	return exitCode
}

// findBestResult returns the fastest successful result, or nil when every
// scheme failed.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResult(res *orchestration.CalculationResult, cfg cli.OutputConfig) error {
	if err := cli.WriteResultToFile(res.Value, a.Config.Z1, a.Config.Z2, res.Name, res.Duration, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return err
	}
	return nil
}

// runFib evaluates the Fibonacci number at the configured index. The index
// is kept as a string until here so that non-numeric and non-integral input
// flows through the same validation path.
func (a *Application) runFib(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	presenter := cli.CLIResultPresenter{}
	start := time.Now()

	n, err := strconv.ParseFloat(a.Config.Fib, 64)
	if err != nil {
		return presenter.HandleError(apperrors.ValidationError{
			Field:   "fib",
			Message: fmt.Sprintf("fibonacci index must be a number, got %q", a.Config.Fib),
		}, time.Since(start), out)
	}

	type fibResult struct {
		value float64
		err   error
	}
	resultChan := make(chan fibResult, 1)
	go func() {
		value, err := fibonacci.Fib(n)
		resultChan <- fibResult{value, err}
	}()

	select {
	case <-ctx.Done():
		return presenter.HandleError(ctx.Err(), time.Since(start), out)
	case res := <-resultChan:
		elapsed := time.Since(start)
		if res.err != nil {
			return presenter.HandleError(res.err, elapsed, out)
		}
		if a.Config.Quiet {
			fmt.Fprintf(out, "%v\n", res.value)
		} else {
			fmt.Fprintf(out, "F(%v) = %v\n", n, res.value)
			fmt.Fprintf(out, "Computed in %s\n", presenter.FormatDuration(elapsed))
		}
		return apperrors.ExitSuccess
	}
}
