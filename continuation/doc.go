// Package continuation follows an isolated root of a parametrized equation
// f(z, k) = 0 as the real parameter k moves away from a known solution.
//
// A [Follower] is anchored at a pair (zStart, kStart) with f(zStart, kStart)
// = 0. Each call to [Follower.Calculate] walks from the anchor toward every
// requested parameter value, solving f(z, k) = 0 with a secant iteration
// seeded from the last accepted root. Accepted steps grow by √2; rejected
// steps shrink by a factor of 10. A step is rejected when the secant solve
// does not converge or when the root has left the half-plane of the anchor
// (the sign of its imaginary part changed). Once the step falls below the
// minimum step the walk in that direction stops, and every target it did not
// reach is reported as NaN.
//
// Targets below kStart and above kStart are walked independently, each in
// order of increasing distance from the anchor, so a failure on one side
// does not affect the other.
package continuation
