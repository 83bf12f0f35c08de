package quad

import (
	"context"
	"fmt"
	"math"

	"github.com/agbru/cosmocalc/internal/progress"
)

// Romberg integrates by Richardson extrapolation of the trapezoidal rule.
// Unlike the bisection schemes it always treats the interval as a whole
// (Options.Panels is ignored): each level halves the step size globally, so
// there is no independent panel to refine.
type Romberg struct{}

// Verify interface compliance.
var _ Integrator = (*Romberg)(nil)

// Name returns the scheme name.
func (*Romberg) Name() string { return "Romberg" }

// Integrate computes the integral of f over [a, b].
//
// Returns ErrToleranceNotReached (wrapped) together with the best estimate
// when the diagonal has not converged within the level budget.
func (r *Romberg) Integrate(ctx context.Context, f Func, a, b float64, report progress.ProgressCallback, opts Options) (float64, error) {
	opts = opts.withDefaults()
	tr := newTracker(b-a, report)
	if a == b {
		tr.finish()
		return 0, nil
	}

	maxLevels := opts.MaxDepth
	if maxLevels > rombergMaxLevels {
		maxLevels = rombergMaxLevels
	}

	h := b - a
	prev := make([]float64, 1, maxLevels+1)
	prev[0] = h / 2 * (f(a) + f(b))

	for k := 1; k <= maxLevels; k++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		// Trapezoid refinement: only the new midpoints are evaluated.
		h /= 2
		var midSum float64
		points := 1 << (k - 1)
		for i := 0; i < points; i++ {
			midSum += f(a + h*float64(2*i+1))
		}

		curr := make([]float64, k+1, maxLevels+1)
		curr[0] = prev[0]/2 + h*midSum
		for j := 1; j <= k; j++ {
			factor := math.Pow(4, float64(j))
			curr[j] = (factor*curr[j-1] - prev[j-1]) / (factor - 1)
		}

		// Require a few levels before trusting the diagonal difference:
		// early rows can agree by accident on oscillatory integrands.
		if k >= 3 && math.Abs(curr[k]-prev[k-1]) <= tolerance(curr[k], opts) {
			tr.finish()
			return curr[k], nil
		}

		tr.report(float64(k) / float64(maxLevels))
		prev = curr
	}

	tr.finish()
	return prev[len(prev)-1], fmt.Errorf("romberg after %d levels: %w", maxLevels, ErrToleranceNotReached)
}
