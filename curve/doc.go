// Package curve provides the validated frequency-response curve entity
// shared by every analysis package in this module.
//
// A [Curve] pairs a strictly increasing, positive frequency axis with
// amplitudes on a dB-linear scale. The pair is immutable after
// validation; the only sanctioned mutation is a whole-pair replacement
// through [Curve.SetXY], used after import-time resampling. Naming and
// visibility metadata mutate freely and never influence numeric
// operations.
//
// Construction goes through [New] or [FromPairs], which reject invalid
// axes instead of repairing them: unsorted input is an error, never an
// implicit sort. Callers that want sorting must sort before calling.
//
// The at-most-one-reference-curve invariant is owned by
// [ReferenceRegistry], kept outside the entity on purpose so that
// analysis code can accept a reference curve as a plain argument.
package curve
