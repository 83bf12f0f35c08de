package quad

import (
	"context"
	"math"

	"github.com/agbru/cosmocalc/internal/progress"
)

// AdaptiveSimpson integrates by recursive interval bisection with a
// Richardson error estimate: an interval is accepted when the two-panel
// Simpson estimate agrees with the one-panel estimate to within 15x the
// interval's error budget, and the extrapolated value is kept.
type AdaptiveSimpson struct{}

// Verify interface compliance.
var _ Integrator = (*AdaptiveSimpson)(nil)

// Name returns the scheme name.
func (*AdaptiveSimpson) Name() string { return "Adaptive Simpson" }

// Integrate computes the integral of f over [a, b].
// See the Integrator interface for the full contract.
func (s *AdaptiveSimpson) Integrate(ctx context.Context, f Func, a, b float64, report progress.ProgressCallback, opts Options) (float64, error) {
	opts = opts.withDefaults()
	return integratePanels(ctx, f, a, b, report, opts, s.panel)
}

// panel refines one panel serially.
func (s *AdaptiveSimpson) panel(ctx context.Context, f Func, a, b, eps float64, depth int, tr *tracker) (float64, error) {
	fa, fb := f(a), f(b)
	m := (a + b) / 2
	fm := f(m)
	whole := simpsonRule(a, b, fa, fm, fb)
	return s.refine(ctx, f, a, b, fa, fm, fb, whole, eps, depth, tr)
}

// refine is the recursive bisection step. At the depth limit the current
// extrapolated estimate is accepted rather than failing the integration.
func (s *AdaptiveSimpson) refine(ctx context.Context, f Func, a, b, fa, fm, fb, whole, eps float64, depth int, tr *tracker) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m := (a + b) / 2
	lm := (a + m) / 2
	rm := (m + b) / 2
	flm := f(lm)
	frm := f(rm)
	left := simpsonRule(a, m, fa, flm, fm)
	right := simpsonRule(m, b, fm, frm, fb)
	delta := left + right - whole

	// The factor 15 comes from the O(h^4) convergence of Simpson's rule:
	// the true error of left+right is approximately delta/15.
	if depth <= 0 || math.Abs(delta) <= 15*eps {
		tr.advance(b - a)
		return left + right + delta/15, nil
	}

	lv, err := s.refine(ctx, f, a, m, fa, flm, fm, left, eps/2, depth-1, tr)
	if err != nil {
		return 0, err
	}
	rv, err := s.refine(ctx, f, m, b, fm, frm, fb, right, eps/2, depth-1, tr)
	if err != nil {
		return 0, err
	}
	return lv + rv, nil
}

// simpsonRule evaluates Simpson's rule on [a, b] given the three required
// function values.
func simpsonRule(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}
