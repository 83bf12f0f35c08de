// Package fibonacci provides a deliberately naive recursive Fibonacci
// evaluator. The exponential running time and the call-stack depth growing
// with the index are retained on purpose: the function exists to demonstrate
// input validation in front of an expensive recursive kernel, not to compute
// large Fibonacci numbers.
package fibonacci

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/cosmocalc/internal/errors"
)

// Fib evaluates the n-th Fibonacci number by direct recursion.
//
// The index is accepted as a float64 so that callers passing parsed user
// input get a validation error instead of silent truncation: non-integral
// values (9.5) and negative values are rejected. Integer-valued floats
// (4.0) are accepted as the integer they equal.
//
// Parameters:
//   - n: The Fibonacci index; must be integral and non-negative.
//
// Returns:
//   - float64: F(n). Exact for every index whose value fits float64's
//     integer range, which covers far more than the recursion can reach.
//   - error: A ValidationError for non-integral or negative input.
func Fib(n float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("fibonacci index must be an integer, got %v", n),
		}
	}
	if n < 0 {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("fibonacci index must not be negative, got %v", n),
		}
	}
	return fib(n), nil
}

// fib is the unguarded recursive kernel: F(n) = F(n-1) + F(n-2), with
// F(0) = 0 and F(1) = 1 returned directly. No memoization.
func fib(n float64) float64 {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
