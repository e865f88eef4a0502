// Package smooth provides the four curve smoothing algorithms.
//
// All algorithms map a frequency-response curve to a new one covering
// the same overall span. Bandwidth is a width in octaves (pass 1.0/6
// for classic 1/6-octave smoothing):
//
//   - [Butterworth8], [Butterworth4]: the curve is resampled to a
//     log-spaced grid at Params.Resolution points per octave and run
//     through a lowpass Butterworth cascade forward and backward
//     (zero phase, no lateral shift of response features). Bandwidth
//     is the distance in octaves between the -3 dB points.
//   - [Rectangular]: symmetric moving average whose window spans
//     Bandwidth octaves, computed directly on the original (possibly
//     irregular) grid without resampling.
//   - [Gaussian]: the curve is resampled like the Butterworth types
//     and convolved with a Gaussian kernel whose standard deviation is
//     Bandwidth/2 octaves.
//
// [Smooth] works on plain numeric pairs; [Apply] wraps the result in a
// curve carrying the source's base name and suffixes. Appending a
// smoothing descriptor (e.g. "smoothed 1/6") is the caller's job.
package smooth
