// Package export serializes solved exchanger runs to JSON, CSV and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/AndrewTrepagnier/crossflowlab/internal/analysis"
	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/metrics"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

// Outputs holds the computed quantities of a solved run.
type Outputs struct {
	MassFlowHot   float64 `json:"mass_flow_hot_kg_s"`
	MassFlowCold  float64 `json:"mass_flow_cold_kg_s"`
	Duty          float64 `json:"duty_w"`
	CHot          float64 `json:"c_hot_w_k"`
	CCold         float64 `json:"c_cold_w_k"`
	CMin          float64 `json:"c_min_w_k"`
	CMax          float64 `json:"c_max_w_k"`
	CapacityRatio float64 `json:"capacity_ratio"`
	QMax          float64 `json:"q_max_w"`
	QActual       float64 `json:"q_actual_w"`
	Effectiveness float64 `json:"effectiveness"`
	NTU           float64 `json:"ntu"`
	UA            float64 `json:"ua_w_k"`
}

// Crosscheck mirrors the LMTD comparison of a completed run.
type Crosscheck struct {
	Closure  float64 `json:"closure"`
	LMTD     float64 `json:"lmtd_k"`
	UALMTD   float64 `json:"ua_lmtd_w_k"`
	FImplied float64 `json:"f_implied"`
}

// Data is the export snapshot of one solved run.
type Data struct {
	Convention string             `json:"convention"`
	Method     string             `json:"method"`
	Iterations int                `json:"iterations"`
	Residual   float64            `json:"residual"`
	Inputs     map[string]float64 `json:"inputs"`
	Outputs    Outputs            `json:"outputs"`
	Crosscheck *Crosscheck        `json:"crosscheck,omitempty"`
}

// FromResult builds an export snapshot from a pipeline result. The LMTD
// crosscheck is attached when the state supports it.
func FromResult(res *exchanger.Result) *Data {
	s := res.State
	d := &Data{
		Convention: res.Convention.String(),
		Method:     res.Method,
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Inputs:     s.Params(),
		Outputs: Outputs{
			MassFlowHot:   s.MassFlowHot,
			MassFlowCold:  s.MassFlowCold,
			Duty:          s.Duty,
			CHot:          s.CHot,
			CCold:         s.CCold,
			CMin:          s.CMin,
			CMax:          s.CMax,
			CapacityRatio: s.RatioMinMax,
			QMax:          s.QMax,
			QActual:       s.QActual,
			Effectiveness: s.Effectiveness,
			NTU:           s.NTU,
			UA:            s.UA,
		},
	}
	if sum, err := metrics.Summarize(s); err == nil {
		d.Crosscheck = &Crosscheck{
			Closure:  sum.Closure,
			LMTD:     sum.LMTD,
			UALMTD:   sum.UALMTD,
			FImplied: sum.FImplied,
		}
	}
	return d
}

// WriteJSON writes the snapshot as indented JSON.
func (d *Data) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// SaveJSON writes the snapshot to a file.
func (d *Data) SaveJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return d.WriteJSON(file)
}

// WriteCSV writes the snapshot as quantity,value rows.
func (d *Data) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"quantity", "value"},
		{"convention", d.Convention},
		{"method", d.Method},
		{"iterations", strconv.Itoa(d.Iterations)},
		{"residual", strconv.FormatFloat(d.Residual, 'e', 3, 64)},
	}
	for _, name := range thermo.ParamNames {
		rows = append(rows, []string{name, formatValue(d.Inputs[name])})
	}
	rows = append(rows,
		[]string{"mass_flow_hot_kg_s", formatValue(d.Outputs.MassFlowHot)},
		[]string{"mass_flow_cold_kg_s", formatValue(d.Outputs.MassFlowCold)},
		[]string{"duty_w", formatValue(d.Outputs.Duty)},
		[]string{"c_hot_w_k", formatValue(d.Outputs.CHot)},
		[]string{"c_cold_w_k", formatValue(d.Outputs.CCold)},
		[]string{"c_min_w_k", formatValue(d.Outputs.CMin)},
		[]string{"c_max_w_k", formatValue(d.Outputs.CMax)},
		[]string{"capacity_ratio", formatValue(d.Outputs.CapacityRatio)},
		[]string{"q_max_w", formatValue(d.Outputs.QMax)},
		[]string{"q_actual_w", formatValue(d.Outputs.QActual)},
		[]string{"effectiveness", formatValue(d.Outputs.Effectiveness)},
		[]string{"ntu", formatValue(d.Outputs.NTU)},
		[]string{"ua_w_k", formatValue(d.Outputs.UA)},
	)
	if d.Crosscheck != nil {
		rows = append(rows,
			[]string{"closure", formatValue(d.Crosscheck.Closure)},
			[]string{"lmtd_k", formatValue(d.Crosscheck.LMTD)},
			[]string{"ua_lmtd_w_k", formatValue(d.Crosscheck.UALMTD)},
			[]string{"f_implied", formatValue(d.Crosscheck.FImplied)},
		)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the snapshot to a file.
func (d *Data) SaveCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return d.WriteCSV(file)
}

// WriteSweepCSV writes one row per sweep point. Failed points keep
// their parameter value and carry the error text in the last column.
func WriteSweepCSV(w io.Writer, param string, points []analysis.SweepPoint) error {
	cw := csv.NewWriter(w)

	header := []string{param, "duty_w", "effectiveness", "ntu", "ua_w_k", "error"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, pt := range points {
		row := []string{formatValue(pt.Value), "", "", "", "", ""}
		if pt.Err != nil {
			row[5] = pt.Err.Error()
		} else {
			row[1] = formatValue(pt.State.Duty)
			row[2] = formatValue(pt.State.Effectiveness)
			row[3] = formatValue(pt.State.NTU)
			row[4] = formatValue(pt.State.UA)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
