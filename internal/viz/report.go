package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/metrics"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

const (
	reportBoxWidth = 36
	sparkSamples   = 56
	sparkWidth     = 28
)

// Report renders a solved operating point as a styled terminal summary:
// a solver status line followed by titled panels for the streams, the
// capacity rates, the performance numbers, and the LMTD crosscheck when
// one is available. Pass nil for sum to omit the crosscheck panel.
func Report(res *exchanger.Result, sum *metrics.Summary) string {
	st := res.State
	cr := st.RatioMinMax
	if res.Convention == thermo.ConvColdHot {
		cr = st.RatioColdHot
	}

	streams := lipgloss.JoinVertical(lipgloss.Left,
		reportRowStyled("hot", fmt.Sprintf("%.1f -> %.1f C", st.THotIn, st.THotOut), HotStyle),
		reportRowStyled("cold", fmt.Sprintf("%.1f -> %.1f C", st.TColdIn, st.TColdOut), ColdStyle),
		reportRow("hot flow", fmt.Sprintf("%.6f kg/s", st.MassFlowHot)),
		reportRow("cold flow", fmt.Sprintf("%.6f kg/s", st.MassFlowCold)),
	)

	capacity := lipgloss.JoinVertical(lipgloss.Left,
		reportRow("C_hot", fmt.Sprintf("%.4f W/K", st.CHot)),
		reportRow("C_cold", fmt.Sprintf("%.4f W/K", st.CCold)),
		reportRow("C_min / C_max", fmt.Sprintf("%.4f / %.4f", st.CMin, st.CMax)),
		reportRow(fmt.Sprintf("Cr (%s)", res.Convention), fmt.Sprintf("%.6f", cr)),
	)

	performance := lipgloss.JoinVertical(lipgloss.Left,
		reportRow("duty", fmt.Sprintf("%.3f W", st.Duty)),
		reportRow("q_max", fmt.Sprintf("%.3f W", st.QMax)),
		reportRow("effectiveness", fmt.Sprintf("%.6f", st.Effectiveness))+" "+ProgressBar(st.Effectiveness, 12),
		reportRow("NTU", fmt.Sprintf("%.6f", st.NTU)),
		reportRow("UA", fmt.Sprintf("%.4f W/K", st.UA)),
		reportRow("curve", sparkline(st.NTU, cr))+" "+KeyHint.Render(sparkCaption(st.NTU)),
	)

	panels := []string{
		reportStatus(res),
		lipgloss.JoinHorizontal(lipgloss.Top,
			BoxWithTitle("STREAMS", streams, reportBoxWidth),
			BoxWithTitle("CAPACITY", capacity, reportBoxWidth),
		),
		BoxWithTitle("PERFORMANCE", performance, 2*reportBoxWidth+4),
	}
	if sum != nil {
		crosscheck := lipgloss.JoinVertical(lipgloss.Left,
			reportRow("closure", fmt.Sprintf("%.6f", sum.Closure)),
			reportRow("LMTD", fmt.Sprintf("%.4f K", sum.LMTD)),
			reportRow("UA (LMTD)", fmt.Sprintf("%.4f W/K", sum.UALMTD)),
			reportRow("F implied", fmt.Sprintf("%.6f", sum.FImplied)),
		)
		panels = append(panels, BoxWithTitle("LMTD CROSSCHECK", crosscheck, 2*reportBoxWidth+4))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func reportStatus(res *exchanger.Result) string {
	verdict := StatusOK.Render("SOLVED")
	if res.Bracketed {
		verdict = StatusWarn.Render("SOLVED (bisection fallback)")
	}
	return verdict + Subtle.Render(fmt.Sprintf("  %s convention, %s, %d iterations, residual %.1e, %v",
		res.Convention, res.Method, res.Iterations, res.Residual, res.Duration))
}

func reportRow(label, value string) string {
	return reportRowStyled(label, value, MetricValue)
}

func reportRowStyled(label, value string, style lipgloss.Style) string {
	return MetricLabel.Render(fmt.Sprintf("%-14s", label)) + style.Render(value)
}

// sparkline samples the effectiveness curve at the solved capacity ratio
// from NTU zero out past the operating point, so the bar heights show how
// close the exchanger sits to its asymptote.
func sparkline(ntu, cr float64) string {
	axis := sparkAxis(ntu)
	values := make([]float64, sparkSamples)
	for i := range values {
		values[i] = exchanger.CrossflowEffectiveness(axis*float64(i)/float64(sparkSamples-1), cr)
	}
	return SparklineChart(values, sparkWidth)
}

func sparkCaption(ntu float64) string {
	return fmt.Sprintf("eps, NTU 0..%.1f", sparkAxis(ntu))
}

func sparkAxis(ntu float64) float64 {
	axis := 2 * ntu
	if axis < 1 {
		axis = 1
	}
	return axis
}
