// Package cosmology models a flat-or-curved FLRW universe by its density
// fractions and computes the line-of-sight comoving distance between two
// redshifts by numerically integrating the inverse dimensionless expansion
// rate 1/E(z). Distances are expressed in comoving Mpc/h.
package cosmology
