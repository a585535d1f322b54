package exchanger_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

var _ = Describe("Pipeline", func() {
	var p *exchanger.Pipeline

	BeforeEach(func() {
		p = exchanger.NewDefault()
	})

	Context("on the reference run", func() {
		It("recovers the worksheet numbers", func() {
			res, err := p.Run(thermo.Defaults())
			Expect(err).NotTo(HaveOccurred())

			Expect(res.State.Duty).To(BeNumerically("~", 146.3, 1e-3))
			Expect(res.State.MassFlowCold).To(BeNumerically("~", 0.0083184, 1e-6))
			Expect(res.State.Effectiveness).To(BeNumerically("~", 0.799087, 1e-5))
			Expect(res.State.NTU).To(BeNumerically("~", 1.6744, 1e-3))
			Expect(res.State.UA).To(BeNumerically("~", 13.998, 2e-2))
		})

		It("satisfies the correlation at the solved NTU", func() {
			res, err := p.Run(thermo.Defaults())
			Expect(err).NotTo(HaveOccurred())

			eps := exchanger.CrossflowEffectiveness(res.State.NTU, res.State.RatioMinMax)
			Expect(eps).To(BeNumerically("~", res.State.Effectiveness, 1e-9))
		})

		It("reports its solver diagnostics", func() {
			res, err := p.Run(thermo.Defaults())
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Method).To(Equal("hybrid"))
			Expect(res.Iterations).To(BeNumerically(">=", 1))
			Expect(res.Residual).To(BeNumerically("<", 1e-10))
		})
	})

	Context("on degenerate operating points", func() {
		It("rejects a hot stream that does not cool", func() {
			s := thermo.Defaults()
			s.THotOut = s.THotIn

			_, err := p.Run(s)
			Expect(err).To(MatchError(thermo.ErrDegenerate))
		})

		It("rejects equal inlet temperatures", func() {
			s := thermo.Defaults()
			s.TColdIn = s.THotIn
			s.TColdOut = s.THotIn + 0.6

			_, err := p.Run(s)
			Expect(err).To(MatchError(thermo.ErrDegenerate))
		})

		It("names the failing stage", func() {
			s := thermo.Defaults()
			s.THotOut = s.THotIn

			_, err := p.Run(s)
			var stageErr *thermo.StageError
			Expect(errors.As(err, &stageErr)).To(BeTrue())
			Expect(stageErr.Stage).To(Equal("energy"))
		})
	})

	Context("with a measured cold flow", func() {
		It("keeps both capacity ratios available", func() {
			s := thermo.Defaults()
			s.ColdMassFlow = 0.0075

			res, err := p.Run(s)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.State.RatioMinMax).To(BeNumerically("~", res.State.CMin/res.State.CMax, 1e-12))
			Expect(res.State.RatioColdHot).To(BeNumerically("~", res.State.CCold/res.State.CHot, 1e-12))
		})
	})
})
