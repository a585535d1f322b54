package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// CurveSet holds a family of crossflow effectiveness curves sampled on a
// shared NTU grid, one series per capacity ratio.
type CurveSet struct {
	MaxNTU float64
	Ratios []float64
	Labels []string
	NTU    []float64
	Series [][]float64
}

// Family samples effectiveness curves for the given capacity ratios over
// NTU in [0, maxNTU]. Ratios must lie in [0, 1] and samples must be at
// least 2.
func Family(ratios []float64, maxNTU float64, samples int) (*CurveSet, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: curve family needs at least one capacity ratio", thermo.ErrInvalidInput)
	}
	if maxNTU <= 0 {
		return nil, fmt.Errorf("%w: max NTU must be positive, got %g", thermo.ErrInvalidInput, maxNTU)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: curve needs at least 2 samples, got %d", thermo.ErrInvalidInput, samples)
	}
	for _, r := range ratios {
		if r < 0 || r > 1 {
			return nil, fmt.Errorf("%w: capacity ratio %g outside [0, 1]", thermo.ErrInvalidInput, r)
		}
	}

	cs := &CurveSet{
		MaxNTU: maxNTU,
		Ratios: append([]float64(nil), ratios...),
		Labels: make([]string, len(ratios)),
		NTU:    make([]float64, samples),
		Series: make([][]float64, len(ratios)),
	}
	step := maxNTU / float64(samples-1)
	for i := range cs.NTU {
		cs.NTU[i] = float64(i) * step
	}
	for i, r := range ratios {
		cs.Labels[i] = fmt.Sprintf("Cr=%.2f", r)
		cs.Series[i] = make([]float64, samples)
		for j, ntu := range cs.NTU {
			cs.Series[i][j] = exchanger.CrossflowEffectiveness(ntu, r)
		}
	}
	return cs, nil
}

// Render plots the family as a terminal chart. Lower capacity ratios sit
// higher on the chart.
func (cs *CurveSet) Render(width, height int) string {
	return asciigraph.PlotMany(cs.Series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("effectiveness vs NTU 0..%g (%s)", cs.MaxNTU, strings.Join(cs.Labels, ", "))),
	)
}

// Draw rasterizes the family onto a braille canvas. The x axis spans
// [0, MaxNTU] and the y axis spans [0, 1].
func (cs *CurveSet) Draw(c *Canvas) {
	for _, series := range cs.Series {
		for j := 1; j < len(series); j++ {
			x0, y0 := cs.dot(c, cs.NTU[j-1], series[j-1])
			x1, y1 := cs.dot(c, cs.NTU[j], series[j])
			c.DrawLine(x0, y0, x1, y1)
		}
	}
}

// Mark places an operating point marker at (ntu, eff) on the canvas,
// using the same axes as Draw.
func (cs *CurveSet) Mark(c *Canvas, ntu, eff float64) {
	x, y := cs.dot(c, ntu, eff)
	c.DrawMarker(x, y)
}

// dot maps data coordinates to canvas sub-pixel coordinates with the y
// axis flipped.
func (cs *CurveSet) dot(c *Canvas, ntu, eff float64) (int, int) {
	maxX := float64(c.Width*2 - 1)
	maxY := float64(c.Height*4 - 1)
	x := int(ntu / cs.MaxNTU * maxX)
	y := int((1 - eff) * maxY)
	return x, y
}

// SweepChart plots solved effectiveness against a swept parameter.
// The two slices must be the same length with at least 2 points.
func SweepChart(param string, values, eff []float64, width, height int) (string, error) {
	if len(values) != len(eff) {
		return "", fmt.Errorf("%w: sweep chart needs matching slices, got %d values and %d points", thermo.ErrInvalidInput, len(values), len(eff))
	}
	if len(values) < 2 {
		return "", fmt.Errorf("%w: sweep chart needs at least 2 points, got %d", thermo.ErrInvalidInput, len(values))
	}
	return asciigraph.Plot(eff,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("effectiveness vs %s [%g .. %g]", param, values[0], values[len(values)-1])),
	), nil
}
