// Package resample regenerates curves on log-spaced frequency grids.
//
// A grid is a lattice of points pinnedHz·2^(k/ppo): "ppo" points per
// octave, anchored so the pinned frequency lands exactly on a grid
// point. The lattice is generated outward from the pin in both
// directions and clipped to the source curve's span, so interpolation
// never leaves the measured range. Amplitudes are linear in
// log-frequency between source samples.
//
// [ToPPO] honors two contracts from the import/export path:
//
//   - ppo == 0 means "no resampling" and returns the input unchanged,
//     checked before any grid construction.
//   - If the generated grid coincides with the input grid within
//     floating tolerance, the input amplitudes are returned as-is,
//     so repeated passes do not accumulate interpolation smoothing.
//
// [SampleAt] is the scorer-facing variant: it evaluates a curve at
// arbitrary query frequencies and reports NaN outside the curve's
// span instead of clamping.
package resample
