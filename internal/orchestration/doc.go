// Package orchestration coordinates the concurrent execution of several
// quadrature schemes against the same distance calculation and analyzes
// their results for consistency. Presentation is delegated through small
// interfaces so the CLI (or tests) can render progress and results without
// this package depending on UI concerns.
package orchestration
