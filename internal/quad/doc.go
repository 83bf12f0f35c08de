// Package quad implements the adaptive quadrature kernels used to integrate
// the inverse expansion rate. Three schemes are provided behind a common
// Integrator interface: adaptive Simpson with Richardson extrapolation,
// globally adaptive Gauss-Kronrod (G7K15), and Romberg integration.
//
// All kernels honor context cancellation, report normalized progress as the
// fraction of the integration interval finalized, and can split the interval
// into panels refined concurrently (see Options.Panels).
package quad
