// Package regression defines the estimator's regression primitive: an
// interface (Fitter) plus a default ordinary-least-squares implementation
// backed by gonum.org/v1/gonum/stat.
//
// The spec treats this primitive as a black box ("specified only by its
// interface") — numerical stability and optimality are the Fitter's concern,
// not the caller's. Package rank only ever checks IsFinite on the result.
package regression
