// Package ensemble computes cross-curve statistics over sets of
// curves whose frequency grids need not match.
//
// Every operation forms the union of all input frequency axes and
// evaluates each curve only at the frequencies it actually defines;
// absent cells are skipped, never interpolated or zero-filled.
// [MeanMedian] aggregates a set into mean and median curves, [IQR]
// adds quartile fences and classifies outlier curves. Results are
// deterministic regardless of map iteration order.
package ensemble
