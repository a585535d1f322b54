// Package tui implements the interactive operating point explorer.
//
// The explorer keeps one exchanger state, re-solves it after every
// adjustment, and renders the solved point on an effectiveness-NTU
// curve next to the numeric panel. Solver and input failures are shown
// inline; the last good solution stays on screen.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/export"
	"github.com/AndrewTrepagnier/crossflowlab/internal/metrics"
	"github.com/AndrewTrepagnier/crossflowlab/internal/solver"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
	"github.com/AndrewTrepagnier/crossflowlab/internal/viz"
)

const (
	canvasWidth     = 50
	canvasHeight    = 15
	curveMaxNTU     = 5.0
	historyCapacity = 120
	snapshotFile    = "crossflow_run.json"
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	headerStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the operating point, solver selection, and render buffers.
type Model struct {
	base    thermo.State
	initial thermo.State
	conv    thermo.Convention
	opts    solver.Options

	methods   []string
	methodIdx int

	res    *exchanger.Result
	sum    *metrics.Summary
	runErr error

	selected   int
	canvas     *viz.Canvas
	effHistory []float64
	note       string
	showHelp   bool
}

// NewModel builds an explorer around a starting operating point and
// solves it once so the first frame has numbers.
func NewModel(base thermo.State, conv thermo.Convention, method string, opts solver.Options) Model {
	methods := solver.List()
	idx := 0
	for i, name := range methods {
		if name == method {
			idx = i
			break
		}
	}

	m := Model{
		base:       base.Derive(),
		initial:    base.Derive(),
		conv:       conv,
		opts:       opts,
		methods:    methods,
		methodIdx:  idx,
		canvas:     viz.NewCanvas(canvasWidth, canvasHeight),
		effHistory: make([]float64, 0, historyCapacity),
	}
	m.solve()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles input events. Every change to the operating point
// triggers a fresh solve.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(thermo.ParamNames)
		case "shift+tab":
			m.selected = (m.selected + len(thermo.ParamNames) - 1) % len(thermo.ParamNames)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "c":
			if m.conv == thermo.ConvMinMax {
				m.conv = thermo.ConvColdHot
			} else {
				m.conv = thermo.ConvMinMax
			}
			m.solve()
		case "m":
			m.methodIdx = (m.methodIdx + 1) % len(m.methods)
			m.solve()
		case "r":
			m.reset()
		case "e":
			m.export()
		case "t":
			viz.NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	key := thermo.ParamNames[m.selected]
	val := m.base.Params()[key]
	newVal := val * factor

	// cold_mass_flow 0 means "derive from the energy balance"; stepping
	// up seeds a measured flow, stepping down far enough returns to it.
	if key == "cold_mass_flow" {
		if factor > 1 && val == 0 {
			newVal = 0.005
		}
		if newVal < 1e-4 {
			newVal = 0
		}
	}

	m.base.SetParam(key, newVal)
	m.base = m.base.Derive()
	m.solve()
}

func (m *Model) reset() {
	m.base = m.initial
	m.conv = thermo.ConvMinMax
	m.methodIdx = 0
	for i, name := range m.methods {
		if name == "hybrid" {
			m.methodIdx = i
			break
		}
	}
	m.effHistory = m.effHistory[:0]
	m.note = ""
	m.solve()
}

func (m *Model) export() {
	if m.res == nil {
		m.note = "nothing to export yet"
		return
	}
	if err := export.FromResult(m.res).SaveJSON(snapshotFile); err != nil {
		m.note = "export failed: " + err.Error()
		return
	}
	m.note = "saved " + snapshotFile
}

// solve re-runs the pipeline for the current inputs. On failure the
// previous result stays on screen with the error shown in the status
// line.
func (m *Model) solve() {
	method, err := solver.New(m.methods[m.methodIdx])
	if err != nil {
		m.runErr = err
		return
	}

	res, err := exchanger.New(m.conv, method, m.opts).Run(m.base)
	m.runErr = err
	if err != nil {
		return
	}

	m.res = res
	if sum, serr := metrics.Summarize(res.State); serr == nil {
		m.sum = &sum
	} else {
		m.sum = nil
	}

	m.effHistory = append(m.effHistory, res.State.Effectiveness)
	if len(m.effHistory) > historyCapacity {
		m.effHistory = m.effHistory[1:]
	}

	m.draw()
}

// draw rasterizes the effectiveness curve for the solved capacity ratio
// with the operating point marked on it.
func (m *Model) draw() {
	m.canvas.Clear()
	if m.res == nil {
		return
	}
	s := m.res.State
	ratio := s.RatioMinMax
	if m.res.Convention == thermo.ConvColdHot {
		ratio = s.RatioColdHot
	}
	cs, err := viz.Family([]float64{ratio}, curveMaxNTU, 2*canvasWidth)
	if err != nil {
		return
	}
	cs.Draw(m.canvas)
	cs.Mark(m.canvas, s.NTU, s.Effectiveness)
}

// View renders the explorer frame.
func (m Model) View() string {
	theme := viz.CurrentTheme

	var s strings.Builder
	s.WriteString(headerStyle.Render(viz.GradientText("CROSSFLOW EXPLORER", theme.Primary, theme.Secondary)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.effHistory) > 1 {
		chart := asciigraph.Plot(m.effHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("effectiveness"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	if m.res != nil {
		st := m.res.State
		cr := st.RatioMinMax
		if m.res.Convention == thermo.ConvColdHot {
			cr = st.RatioColdHot
		}
		s.WriteString(labelStyle.Render("Hot") + viz.HotStyle.Render(fmt.Sprintf("%.1f -> %.1f C", st.THotIn, st.THotOut)) + "\n")
		s.WriteString(labelStyle.Render("Cold") + viz.ColdStyle.Render(fmt.Sprintf("%.1f -> %.1f C", st.TColdIn, st.TColdOut)) + "\n")
		s.WriteString(labelStyle.Render("Duty") + valueStyle.Render(fmt.Sprintf("%.1f W", st.Duty)) + "\n")
		s.WriteString(labelStyle.Render("Effectiveness") + valueStyle.Render(fmt.Sprintf("%.4f ", st.Effectiveness)) + viz.ProgressBar(st.Effectiveness, 12) + "\n")
		s.WriteString(labelStyle.Render("NTU") + valueStyle.Render(fmt.Sprintf("%.4f", st.NTU)) + "\n")
		s.WriteString(labelStyle.Render("UA") + valueStyle.Render(fmt.Sprintf("%.3f W/K", st.UA)) + "\n")
		s.WriteString(labelStyle.Render("Cr") + valueStyle.Render(fmt.Sprintf("%.4f", cr)) + "\n")
		if m.sum != nil {
			s.WriteString(labelStyle.Render("LMTD") + valueStyle.Render(fmt.Sprintf("%.3f K", m.sum.LMTD)) + "\n")
			s.WriteString(labelStyle.Render("F implied") + valueStyle.Render(fmt.Sprintf("%.4f", m.sum.FImplied)) + "\n")
		}
	}

	s.WriteString("\nPARAMETERS\n")
	params := m.base.Params()
	initials := m.initial.Params()
	for i, k := range thermo.ParamNames {
		val := params[k]
		initial := initials[k]
		if initial == 0 {
			initial = 1e-6
		}
		barWidth := 10
		ratio := val / (2.0 * initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-14s %s %.3f", k, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if m.note != "" {
		s.WriteString("\n" + viz.Subtle.Render(m.note) + "\n")
	}
	s.WriteString(helpStyle.Render("\n" + viz.Separator(40) + "\nTab:Param ↑↓:Tune C:Convention M:Method\nE:Export R:Reset T:Theme ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	canvasView := canvasStyle.Render(strings.TrimRight(m.canvas.String(), "\n") + "\n" + viz.KeyHint.Render(fmt.Sprintf("effectiveness vs NTU 0..%.0f", curveMaxNTU)))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  Tab        - Cycle parameters           ║
║  Up/K       - Increase parameter (+5%)   ║
║  Down/J     - Decrease parameter (-5%)   ║
║  C          - Toggle ratio convention    ║
║  M          - Cycle solver method        ║
║  E          - Export snapshot to JSON    ║
║  R          - Reset operating point      ║
║  T          - Cycle themes               ║
║  ?          - Toggle this help           ║
║  Q          - Quit                       ║
╚══════════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// statusLine reports convention, method and solver diagnostics for the
// displayed solution, or the failure that kept it stale.
func (m Model) statusLine() string {
	conv := m.conv.String()
	method := m.methods[m.methodIdx]

	if m.runErr != nil {
		return viz.StatusFail.Render("ERROR ") + valueStyle.Render(m.runErr.Error())
	}
	if m.res == nil {
		return viz.StatusWarn.Render("no solution")
	}

	status := viz.StatusOK.Render("SOLVED")
	if m.res.Bracketed {
		status = viz.StatusWarn.Render("SOLVED (bisection fallback)")
	}
	return fmt.Sprintf("%s  %s  %s",
		status,
		viz.Subtle.Render(fmt.Sprintf("conv=%s method=%s", conv, method)),
		viz.Subtle.Render(fmt.Sprintf("%d iter, residual %.1e", m.res.Iterations, m.res.Residual)))
}
