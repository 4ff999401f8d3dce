// Package lti describes linear time-invariant systems by their s-plane
// features and their frequency response.
//
// The package intentionally does not implement system modeling. It accepts
// pole/zero locations that are already known (for example from a filter
// design step) and evaluates or composes responses point-wise over a
// frequency sweep. There is no state-space representation, no polynomial
// root finding, and no general block algebra.
package lti
