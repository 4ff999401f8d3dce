// Package freq provides frequency sweep derivation and unit conversion for
// frequency-response analysis.
//
// The central piece is [DefaultSweep], which turns a set of s-plane feature
// locations into a logarithmic sweep bracketing every finite corner
// frequency by one decade on each side. Corner frequencies dominate the
// shape of a frequency response, so the derived range captures the
// transition regions without the caller knowing system internals.
package freq
