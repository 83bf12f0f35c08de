package cosmology

import (
	"context"
	"math"

	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/progress"
	"github.com/agbru/cosmocalc/internal/quad"
)

// Default cosmological parameters: a flat ΛCDM universe with 30% matter.
const (
	// DefaultMatterDensity is the default matter density fraction ΩM.
	DefaultMatterDensity = 0.3

	// DefaultLambdaDensity is the default dark-energy density fraction ΩΛ.
	DefaultLambdaDensity = 0.7

	// DefaultHubbleParameter is the default dimensionless Hubble rate h,
	// where H0 = 100 h km/s/Mpc.
	DefaultHubbleParameter = 0.7

	// hubbleDistanceScale is c/H0 expressed in Mpc for h = 1; dividing by
	// h yields the Hubble distance in Mpc/h.
	hubbleDistanceScale = 3000.0
)

// Cosmology holds one immutable parameter set. The curvature density ΩK and
// the Hubble distance are derived once at construction and never recomputed.
type Cosmology struct {
	omegaM         float64
	omegaL         float64
	omegaK         float64
	h              float64
	hubbleDistance float64
}

// Option customizes a Cosmology during construction.
type Option func(*Cosmology)

// WithMatterDensity sets the matter density fraction ΩM.
func WithMatterDensity(omegaM float64) Option {
	return func(c *Cosmology) { c.omegaM = omegaM }
}

// WithLambdaDensity sets the dark-energy density fraction ΩΛ.
func WithLambdaDensity(omegaL float64) Option {
	return func(c *Cosmology) { c.omegaL = omegaL }
}

// WithHubbleParameter sets the dimensionless Hubble rate h.
func WithHubbleParameter(h float64) Option {
	return func(c *Cosmology) { c.h = h }
}

// New creates a Cosmology with the default flat ΛCDM parameters, modified by
// the given options. The curvature density is derived as 1 − ΩM − ΩΛ and the
// Hubble distance as 3000/h Mpc/h.
//
// Parameters:
//   - opts: Parameter overrides.
//
// Returns:
//   - *Cosmology: The immutable parameter set.
func New(opts ...Option) *Cosmology {
	c := &Cosmology{
		omegaM: DefaultMatterDensity,
		omegaL: DefaultLambdaDensity,
		h:      DefaultHubbleParameter,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.omegaK = 1 - c.omegaM - c.omegaL
	c.hubbleDistance = hubbleDistanceScale / c.h
	return c
}

// MatterDensity returns ΩM.
func (c *Cosmology) MatterDensity() float64 { return c.omegaM }

// LambdaDensity returns ΩΛ.
func (c *Cosmology) LambdaDensity() float64 { return c.omegaL }

// CurvatureDensity returns the derived ΩK = 1 − ΩM − ΩΛ.
func (c *Cosmology) CurvatureDensity() float64 { return c.omegaK }

// HubbleParameter returns the dimensionless Hubble rate h.
func (c *Cosmology) HubbleParameter() float64 { return c.h }

// HubbleDistance returns the derived Hubble distance 3000/h in Mpc/h.
func (c *Cosmology) HubbleDistance() float64 { return c.hubbleDistance }

// E computes the dimensionless expansion rate at redshift z:
//
//	E(z) = sqrt(ΩM(1+z)³ + ΩK(1+z)² + ΩΛ)
//
// Defined for all non-negative z; negative redshifts are evaluated as
// written without a guard.
func (c *Cosmology) E(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(c.omegaM*zp1*zp1*zp1 + c.omegaK*zp1*zp1 + c.omegaL)
}

// InvE computes 1/E(z); this is the integrand of the comoving distance.
func (c *Cosmology) InvE(z float64) float64 {
	return 1 / c.E(z)
}

// ComovingDistance computes the line-of-sight comoving distance between
// redshifts z1 and z2 using the Gauss-Kronrod scheme with default
// tolerances. See ComovingDistanceWith for the full contract.
func (c *Cosmology) ComovingDistance(ctx context.Context, z1, z2 float64) (float64, error) {
	return c.ComovingDistanceWith(ctx, &quad.GaussKronrod{}, z1, z2, nil, quad.Options{})
}

// ComovingDistanceWith computes the line-of-sight comoving distance between
// redshifts z1 and z2 with an explicit quadrature scheme:
//
//	D_C = D_H ∫[z1,z2] dz / E(z)
//
// Parameters:
//   - ctx: Context for cancellation and deadline.
//   - integ: The quadrature scheme.
//   - z1, z2: Redshift bounds; z2 must be greater than z1.
//   - report: Progress callback, may be nil.
//   - opts: Quadrature tolerances and limits; zero fields select defaults.
//
// Returns:
//   - float64: The distance in comoving Mpc/h.
//   - error: A ValidationError when z2 <= z1, or a CalculationError
//     wrapping the quadrature failure.
func (c *Cosmology) ComovingDistanceWith(ctx context.Context, integ quad.Integrator, z1, z2 float64, report progress.ProgressCallback, opts quad.Options) (float64, error) {
	if z2 <= z1 {
		return 0, apperrors.ValidationError{Field: "z2", Message: "z2 must be greater than z1"}
	}

	integral, err := integ.Integrate(ctx, c.InvE, z1, z2, report, opts)
	if err != nil {
		return 0, apperrors.CalculationError{Cause: err}
	}
	return c.hubbleDistance * integral, nil
}

// AngularDiameterDistance is deliberately not implemented: it always returns
// a NotImplementedError.
func (c *Cosmology) AngularDiameterDistance(ctx context.Context, z1, z2 float64) (float64, error) {
	return 0, apperrors.NotImplementedError{Operation: "angular diameter distance"}
}
