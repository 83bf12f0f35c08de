package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/cosmocalc/internal/config"
	"github.com/agbru/cosmocalc/internal/cosmology"
	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/progress"
	"github.com/agbru/cosmocalc/internal/quad"
)

const (
	// ProgressBufferMultiplier sizes the progress channel relative to the
	// number of schemes so a slow renderer does not stall the integrators.
	ProgressBufferMultiplier = 5

	// MismatchRelTol is the relative tolerance within which two schemes
	// are considered to agree. Schemes converge to far tighter tolerances
	// than this; any larger spread indicates a genuine defect.
	MismatchRelTol = 1e-9
)

var tracer = otel.Tracer("github.com/agbru/cosmocalc/internal/orchestration")

// GetIntegratorsToRun resolves the configured scheme selection against the
// factory. The "all" selection yields every registered scheme in the
// factory's deterministic order; an unknown name yields an empty slice
// (config validation rejects unknown names before execution).
func GetIntegratorsToRun(cfg config.AppConfig, factory quad.Factory) []quad.Integrator {
	if cfg.Algo == config.AlgoAll {
		return factory.GetAll()
	}
	integ, err := factory.Get(cfg.Algo)
	if err != nil {
		return nil
	}
	return []quad.Integrator{integ}
}

// ExecuteCalculations runs every integrator concurrently against the same
// comoving-distance problem and collects one CalculationResult per scheme,
// in the integrators' order. Progress updates from all schemes are funneled
// through a single buffered channel to the reporter, which runs until the
// channel closes.
func ExecuteCalculations(
	ctx context.Context,
	cosmo *cosmology.Cosmology,
	integrators []quad.Integrator,
	cfg config.AppConfig,
	reporter ProgressReporter,
	out io.Writer,
) []CalculationResult {
	results := make([]CalculationResult, len(integrators))

	progressChan := make(chan progress.ProgressUpdate, len(integrators)*ProgressBufferMultiplier)
	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(integrators), out)

	g, gctx := errgroup.WithContext(ctx)
	for i, integ := range integrators {
		idx, integ := i, integ
		g.Go(func() error {
			spanCtx, span := tracer.Start(gctx, "cosmocalc.comoving_distance",
				trace.WithAttributes(
					attribute.String("scheme", integ.Name()),
					attribute.Float64("z1", cfg.Z1),
					attribute.Float64("z2", cfg.Z2),
				))
			defer span.End()

			start := time.Now()
			value, err := cosmo.ComovingDistanceWith(spanCtx, integ, cfg.Z1, cfg.Z2, subject.Callback(idx), cfg.ToQuadOptions())
			if err != nil {
				span.RecordError(err)
			}
			results[idx] = CalculationResult{
				Name:     integ.Name(),
				Value:    value,
				Duration: time.Since(start),
				Err:      err,
			}
			// Errors are reported through the result slice so every
			// scheme runs to completion even when a sibling fails.
			return nil
		})
	}
	_ = g.Wait()

	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults inspects the per-scheme results, renders them
// through the presenter, and returns the process exit code. Only schemes
// that succeeded participate in the agreement check; a run where at least
// one scheme succeeds and all successes agree within MismatchRelTol exits
// zero. If every scheme failed, the first error determines the exit code.
func AnalyzeComparisonResults(
	results []CalculationResult,
	opts PresentationOptions,
	presenter ResultPresenter,
	errHandler ErrorHandler,
	out io.Writer,
) int {
	successes := make([]CalculationResult, 0, len(results))
	var firstFailure *CalculationResult
	for i, res := range results {
		if res.Err != nil {
			if firstFailure == nil {
				firstFailure = &results[i]
			}
			continue
		}
		successes = append(successes, res)
	}

	if len(successes) == 0 {
		if firstFailure != nil {
			return errHandler.HandleError(firstFailure.Err, firstFailure.Duration, out)
		}
		return errHandler.HandleError(fmt.Errorf("no quadrature schemes were executed"), 0, out)
	}

	if len(results) > 1 && !opts.Quiet {
		presenter.PresentComparisonTable(results, opts, out)
	}

	reference := successes[0]
	for _, res := range successes[1:] {
		if !withinTolerance(reference.Value, res.Value) {
			fmt.Fprintf(out, "MISMATCH: %s produced %v but %s produced %v\n",
				reference.Name, reference.Value, res.Name, res.Value)
			return apperrors.ExitErrorMismatch
		}
	}

	best := successes[0]
	for _, res := range successes[1:] {
		if res.Duration < best.Duration {
			best = res
		}
	}
	presenter.PresentResult(best, opts, out)
	return apperrors.ExitSuccess
}

// withinTolerance reports whether a and b agree to MismatchRelTol,
// relative to the larger magnitude (with an absolute floor of 1).
func withinTolerance(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= MismatchRelTol*scale
}
