// Package modulator models the optical transfer function of Mach-Zehnder
// modulators.
//
// Two fixed topologies are provided:
//
//   - [MZM]: a single balanced Mach-Zehnder modulator. The input field is split
//     by an ideal 3 dB splitter, each arm receives an equal and opposite phase
//     shift proportional to the drive voltage, and the arms are summed.
//   - [IQ]: a dual-polarization IQ modulator built from two MZMs (I and Q
//     branches) fed with split copies of the input and recombined with a fixed
//     quadrature phase offset.
//
// # Phase Convention
//
// The drive voltage is normalized by the device's Vπ and each arm receives
// half of π·(Vrf+Vdc)/Vπ:
//
//	phi  = (Vrf + Vdc) / Vpi
//	arm3 = Ein/2 · exp(+iπ·phi/2)
//	arm4 = Ein/2 · exp(-iπ·phi/2)
//	Eout = arm3 + arm4 = Ein · cos(π·phi/2)
//
// So Eout equals Ein at zero drive, vanishes at V = Vπ and repeats every 2·Vπ.
// No power normalization is applied to the combiner.
//
// # Example
//
//	mzm, err := modulator.NewMZM(modulator.DefaultDevice())
//	if err != nil {
//	    return err
//	}
//	out := mzm.Modulate(1+0i, 0.5)
//	fmt.Println(cmplx.Abs(out.Eout))
//
// All operations are pure; MZM and IQ values are immutable and safe to share.
package modulator
