// Package sweep drives the modulator models over a grid of an independent
// variable and collects aligned series for plotting and analysis.
//
// Three modes are provided:
//
//   - [Time]: input phase θ sweeps a grid, Ein(θ) = exp(iθ), voltage fixed
//   - [Transfer]: fixed input field, drive voltage sweeps a grid
//   - [DualTime]: as [Time] but through an IQ modulator with fixed (Iv, Qv)
//
// Each mode has a lazy form ([TimeSamples], [TransferSamples],
// [DualTimeSamples]) returning an iter.Seq that can be ranged over any number
// of times, and a collected form returning a series of equal-length slices.
// Identical inputs always yield bit-identical output.
//
// [TimeFamily], [DualFamily] and [Constellation] repeat a mode over sets of
// fixed voltages for multi-panel or animated views.
package sweep
