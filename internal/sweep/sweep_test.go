package sweep_test

import (
	"math"
	"math/cmplx"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mzsim/internal/modulator"
	"github.com/san-kum/mzsim/internal/sweep"
)

var _ = Describe("Time", func() {
	var (
		mzm  *modulator.MZM
		grid sweep.Grid
	)

	BeforeEach(func() {
		mzm = modulator.Default()
		grid = sweep.PhaseGrid()
	})

	It("returns one sample per grid point", func() {
		s, err := sweep.Time(mzm, 0.5, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Len()).To(Equal(100))
		Expect(s.Theta).To(Equal([]float64(grid)))
		Expect(s.Eout).To(HaveLen(100))
		Expect(s.B4).To(HaveLen(100))
	})

	It("feeds a unit carrier exp(iθ)", func() {
		s, err := sweep.Time(mzm, 1, grid)
		Expect(err).NotTo(HaveOccurred())
		for i, theta := range s.Theta {
			Expect(s.Ein[i]).To(Equal(cmplx.Exp(complex(0, theta))))
		}
	})

	It("passes the carrier through unchanged at zero voltage", func() {
		s, err := sweep.Time(mzm, 0, grid)
		Expect(err).NotTo(HaveOccurred())
		for i := range s.Ein {
			Expect(cmplx.Abs(s.Eout[i] - s.Ein[i])).To(BeNumerically("<", 1e-12))
		}
	})

	It("extinguishes the output at Vpi while each arm keeps half the amplitude", func() {
		s, err := sweep.Time(mzm, 1, grid)
		Expect(err).NotTo(HaveOccurred())
		for i := range s.Eout {
			Expect(cmplx.Abs(s.Eout[i])).To(BeNumerically("<", 1e-12))
			Expect(cmplx.Abs(s.B3[i])).To(BeNumerically("~", 0.5, 1e-12))
			Expect(cmplx.Abs(s.B4[i])).To(BeNumerically("~", 0.5, 1e-12))
		}
	})

	It("reproduces bit-identical series for identical inputs", func() {
		a, err := sweep.Time(mzm, 0.7, grid)
		Expect(err).NotTo(HaveOccurred())
		b, err := sweep.Time(mzm, 0.7, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
		Expect(sweep.Real(a.Eout)).To(Equal(sweep.Real(b.Eout)))
	})

	It("does not alias the caller's grid", func() {
		g := slices.Clone(grid)
		s, err := sweep.Time(mzm, 0, g)
		Expect(err).NotTo(HaveOccurred())
		g[0] = 42
		Expect(s.Theta[0]).To(Equal(-2 * math.Pi))
	})

	It("matches the lazy sequence, including on large parallel grids", func() {
		big, err := sweep.Linspace(-20, 20, 5000)
		Expect(err).NotTo(HaveOccurred())

		s, err := sweep.Time(mzm, 0.3, big)
		Expect(err).NotTo(HaveOccurred())

		lazy := slices.Collect(sweep.TimeSamples(mzm, 0.3, big))
		Expect(lazy).To(HaveLen(len(big)))
		for i, p := range lazy {
			Expect(p.Theta).To(Equal(s.Theta[i]))
			Expect(p.Out.Eout).To(Equal(s.Eout[i]))
			Expect(p.Out.Arm3).To(Equal(s.B3[i]))
		}
	})

	It("rejects an empty grid", func() {
		_, err := sweep.Time(mzm, 0, nil)
		Expect(err).To(MatchError(sweep.ErrEmptyGrid))
	})
})

var _ = Describe("TimeSamples", func() {
	It("can be ranged over repeatedly", func() {
		seq := sweep.TimeSamples(modulator.Default(), 0.25, sweep.PhaseGrid())
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		Expect(first).To(Equal(second))
	})

	It("stops when the consumer breaks", func() {
		count := 0
		for range sweep.TimeSamples(modulator.Default(), 0, sweep.PhaseGrid()) {
			count++
			if count == 3 {
				break
			}
		}
		Expect(count).To(Equal(3))
	})
})

var _ = Describe("Transfer", func() {
	var mzm *modulator.MZM

	BeforeEach(func() {
		mzm = modulator.Default()
	})

	It("traces a symmetric cos² curve over the default voltage grid", func() {
		s, err := sweep.Transfer(mzm, 2+2i, sweep.VoltageGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Len()).To(Equal(1000))

		n := s.Len()
		for i := 0; i < n; i++ {
			Expect(s.Intensity[i]).To(BeNumerically("~", s.Intensity[n-1-i], 1e-9))
			Expect(s.Intensity[i]).To(BeNumerically("~", s.Amplitude[i]*s.Amplitude[i], 1e-12))
			want := math.Pow(math.Cos(math.Pi*s.Voltage[i]/2), 2)
			Expect(s.Intensity[i]).To(BeNumerically("~", want, 1e-9))
		}

		Expect(slices.Max(s.Intensity)).To(BeNumerically("~", 1, 1e-3))
		Expect(slices.Min(s.Intensity)).To(BeNumerically("<", 1e-3))
	})

	It("peaks at 1.0 on even multiples of Vpi", func() {
		grid := sweep.Grid{-4, -2, 0, 2, 4}
		s, err := sweep.Transfer(mzm, 2+2i, grid)
		Expect(err).NotTo(HaveOccurred())
		for _, v := range s.Intensity {
			Expect(v).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("repeats every 2·Vpi", func() {
		grid, err := sweep.Linspace(-1, 1, 41)
		Expect(err).NotTo(HaveOccurred())
		shifted := make(sweep.Grid, len(grid))
		for i, v := range grid {
			shifted[i] = v + 2
		}

		a, err := sweep.Transfer(mzm, 1i, grid)
		Expect(err).NotTo(HaveOccurred())
		b, err := sweep.Transfer(mzm, 1i, shifted)
		Expect(err).NotTo(HaveOccurred())
		for i := range a.Intensity {
			Expect(a.Intensity[i]).To(BeNumerically("~", b.Intensity[i], 1e-9))
		}
	})

	It("rejects a zero input field", func() {
		_, err := sweep.Transfer(mzm, 0, sweep.VoltageGrid())
		Expect(err).To(MatchError(sweep.ErrZeroField))
	})

	It("yields the same samples lazily", func() {
		grid := sweep.VoltageGrid()
		s, err := sweep.Transfer(mzm, 2+2i, grid)
		Expect(err).NotTo(HaveOccurred())
		i := 0
		for p := range sweep.TransferSamples(mzm, 2+2i, grid) {
			Expect(p.Intensity).To(Equal(s.Intensity[i]))
			i++
		}
		Expect(i).To(Equal(len(grid)))
	})
})

var _ = Describe("DualTime", func() {
	It("agrees with the IQ model sample by sample", func() {
		iq := modulator.DefaultIQ()
		grid := sweep.PhaseGrid()
		s, err := sweep.DualTime(iq, 0.5, 1.5, modulator.QuadraturePhase, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Len()).To(Equal(len(grid)))

		for i, theta := range grid {
			want := modulator.DualModulate(cmplx.Exp(complex(0, theta)), 0.5, 1.5, modulator.QuadraturePhase)
			Expect(s.Eout[i]).To(Equal(want.Eout))
			Expect(s.Iout[i]).To(Equal(want.Iout))
			Expect(s.Qout[i]).To(Equal(want.Qout))
		}
	})
})

var _ = Describe("Families", func() {
	It("runs one time sweep per voltage in order", func() {
		family, err := sweep.TimeFamily(modulator.Default(), sweep.DefaultVoltages, sweep.PhaseGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(family).To(HaveLen(len(sweep.DefaultVoltages)))
		for i, s := range family {
			Expect(s.V).To(Equal(sweep.DefaultVoltages[i]))
		}
	})

	It("nests I voltages outside Q voltages", func() {
		family, err := sweep.DualFamily(modulator.DefaultIQ(), []float64{0, 1}, []float64{0, 0.5, 1}, modulator.QuadraturePhase, sweep.PhaseGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(family).To(HaveLen(6))
		Expect(family[1].IV).To(Equal(0.0))
		Expect(family[1].QV).To(Equal(0.5))
		Expect(family[3].IV).To(Equal(1.0))
		Expect(family[3].QV).To(Equal(0.0))
	})

	It("places QPSK drive pairs on the four quadrants", func() {
		c, err := sweep.Constellation(modulator.DefaultIQ(), 1, []float64{0, 2}, []float64{0, 2}, modulator.QuadraturePhase)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Len()).To(Equal(4))

		want := []complex128{0.5 + 0.5i, 0.5 - 0.5i, -0.5 + 0.5i, -0.5 - 0.5i}
		for i, z := range c.Eout {
			Expect(cmplx.Abs(z - want[i])).To(BeNumerically("<", 1e-12))
		}

		abs, ok := c.Table().Column("abs_eout")
		Expect(ok).To(BeTrue())
		for _, a := range abs {
			Expect(a).To(BeNumerically("~", math.Sqrt2/2, 1e-12))
		}
	})

	It("rejects empty voltage sets", func() {
		_, err := sweep.TimeFamily(modulator.Default(), nil, sweep.PhaseGrid())
		Expect(err).To(MatchError(sweep.ErrEmptyGrid))
		_, err = sweep.Constellation(modulator.DefaultIQ(), 1, nil, []float64{0}, 0)
		Expect(err).To(MatchError(sweep.ErrEmptyGrid))
	})
})
