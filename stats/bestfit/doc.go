// Package bestfit ranks a set of curves by how closely each one
// follows a chosen reference curve.
//
// The reference is resampled onto a log-spaced grid, every candidate
// is evaluated on that grid by log-frequency interpolation, and the
// squared residuals are reduced to one standard deviation per
// candidate. An optional critical band reweights residuals inside a
// frequency interval before the reduction. [Rank] returns the
// candidates ordered from best to worst fit.
package bestfit
