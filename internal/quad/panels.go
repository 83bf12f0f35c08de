package quad

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/cosmocalc/internal/progress"
)

// panelKernel refines a single panel serially. eps is the absolute error
// budget allotted to the panel and depth the remaining bisection depth.
type panelKernel func(ctx context.Context, f Func, a, b, eps float64, depth int, tr *tracker) (float64, error)

// integratePanels splits [a, b] into opts.Panels equal panels, refines each
// with the kernel (concurrently when more than one panel is requested), and
// sums the panel results in index order so the result is deterministic for a
// given panel count.
//
// The global error budget is derived from a coarse composite-Simpson
// estimate of the whole integral and distributed to panels proportionally
// to their width.
func integratePanels(ctx context.Context, f Func, a, b float64, report progress.ProgressCallback, opts Options, kernel panelKernel) (float64, error) {
	tr := newTracker(b-a, report)
	if a == b {
		tr.finish()
		return 0, nil
	}

	coarse := compositeSimpson(f, a, b, 16)
	epsTotal := tolerance(coarse, opts)

	if opts.Panels == 1 {
		return kernel(ctx, f, a, b, epsTotal, opts.MaxDepth, tr)
	}

	width := (b - a) / float64(opts.Panels)
	epsPanel := epsTotal / float64(opts.Panels)
	results := make([]float64, opts.Panels)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < opts.Panels; i++ {
		idx := i
		pa := a + width*float64(idx)
		pb := pa + width
		if idx == opts.Panels-1 {
			pb = b // absorb rounding in the last panel
		}
		g.Go(func() error {
			v, err := kernel(ctx, f, pa, pb, epsPanel, opts.MaxDepth, tr)
			results[idx] = v
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range results {
		sum += v
	}
	return sum, nil
}

// compositeSimpson evaluates a non-adaptive composite Simpson rule with n
// sub-intervals (n must be even). Used only to seed the error budget.
func compositeSimpson(f Func, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + h*float64(i)
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}
