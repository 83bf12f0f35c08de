//go:generate mockgen -source=quad.go -destination=mocks/mock_quad.go -package=mocks

package quad

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/agbru/cosmocalc/internal/progress"
)

// Func is a real-valued integrand.
type Func func(x float64) float64

// Default tolerances and limits, chosen to comfortably exceed the accuracy
// a float64 distance result can express while keeping the kernels cheap for
// smooth integrands like 1/E(z).
const (
	// DefaultAbsTol is the default absolute error tolerance.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the default relative error tolerance.
	DefaultRelTol = 1e-10

	// DefaultMaxDepth is the default bisection depth limit for the
	// adaptive schemes. 2^40 subdivisions of the original interval is far
	// beyond what a smooth integrand ever needs; hitting the limit means
	// the integrand is pathological near some point.
	DefaultMaxDepth = 40

	// rombergMaxLevels caps the Romberg table size regardless of
	// Options.MaxDepth: level k costs 2^k evaluations.
	rombergMaxLevels = 22
)

// ErrToleranceNotReached reports that a scheme exhausted its iteration or
// depth budget before satisfying the requested tolerance. The returned value
// is the best available estimate.
var ErrToleranceNotReached = errors.New("tolerance not reached within iteration limit")

// Options controls the behavior of an integration.
// The zero value selects the package defaults.
type Options struct {
	// AbsTol is the absolute error tolerance. Zero selects DefaultAbsTol.
	AbsTol float64
	// RelTol is the relative error tolerance. Zero selects DefaultRelTol.
	RelTol float64
	// MaxDepth limits recursive bisection depth. Zero selects DefaultMaxDepth.
	MaxDepth int
	// Panels is the number of equal sub-intervals the integration range is
	// split into before refinement. Values greater than one enable
	// concurrent refinement of the panels. Zero and one mean serial
	// integration of the whole range.
	Panels int
}

// withDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) withDefaults() Options {
	if o.AbsTol == 0 {
		o.AbsTol = DefaultAbsTol
	}
	if o.RelTol == 0 {
		o.RelTol = DefaultRelTol
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Panels < 1 {
		o.Panels = 1
	}
	return o
}

// Integrator numerically integrates f over [a, b].
//
// Implementations must be safe for concurrent use: the orchestration layer
// runs several schemes against the same integrand at once.
type Integrator interface {
	// Name returns the human-readable scheme name.
	Name() string

	// Integrate computes the integral of f over [a, b].
	//
	// Parameters:
	//   - ctx: Context for cancellation; kernels poll it between refinements.
	//   - f: The integrand.
	//   - a, b: Integration bounds, a < b.
	//   - report: Progress callback, may be nil.
	//   - opts: Tolerances and limits; zero fields select defaults.
	//
	// Returns:
	//   - float64: The integral estimate.
	//   - error: Context errors, or ErrToleranceNotReached (wrapped) when
	//     the budget was exhausted; the estimate is still returned then.
	Integrate(ctx context.Context, f Func, a, b float64, report progress.ProgressCallback, opts Options) (float64, error)
}

// tracker accumulates the finalized interval length across goroutines and
// converts it into normalized progress reports.
type tracker struct {
	mu     sync.Mutex
	total  float64
	done   float64
	report progress.ProgressCallback
}

// newTracker creates a tracker over an interval of the given total length.
// A nil report callback is replaced with a no-op.
func newTracker(total float64, report progress.ProgressCallback) *tracker {
	if report == nil {
		report = func(float64) {}
	}
	return &tracker{total: total, report: report}
}

// advance records that an additional interval of the given length has been
// finalized and reports the resulting fraction.
func (t *tracker) advance(length float64) {
	t.mu.Lock()
	t.done += length
	fraction := t.done / t.total
	t.mu.Unlock()

	if fraction > 1 {
		fraction = 1
	}
	t.report(fraction)
}

// finish forces a final 1.0 report, covering schemes whose refinement does
// not naturally sweep the whole interval (e.g. Romberg).
func (t *tracker) finish() {
	t.report(1)
}

// tolerance computes the acceptance threshold for an estimate: the larger of
// the absolute tolerance and the relative tolerance scaled by the estimate.
func tolerance(estimate float64, opts Options) float64 {
	return math.Max(opts.AbsTol, opts.RelTol*math.Abs(estimate))
}
