// Package analysis extracts device characteristics from collected sweeps.
//
//   - [PowerSpectrum]: magnitude spectrum of a real series, mean removed
//   - [DominantFrequency]: strongest non-DC frequency of a uniformly sampled series
//   - [EstimateVpi]: Vπ recovered from the period of a transfer curve
//   - [ExtinctionRatioDB]: max/min ratio of a transmission curve
//
// # Vπ Estimation
//
// A balanced MZM transmits cos²(π·V/(2·Vπ)) = ½ + ½·cos(π·V/Vπ), which has
// period 2·Vπ in voltage:
//
//	s, _ := sweep.Transfer(mzm, 1, sweep.VoltageGrid())
//	vpi, _ := analysis.EstimateVpi(s.Voltage, s.Intensity)
//
// The estimate resolves to one FFT bin, so wider sweeps give tighter estimates.
package analysis
