package viz

import (
	"strings"
	"testing"

	"github.com/AndrewTrepagnier/crossflowlab/internal/exchanger"
	"github.com/AndrewTrepagnier/crossflowlab/internal/metrics"
	"github.com/AndrewTrepagnier/crossflowlab/internal/thermo"
)

func solvedReference(t *testing.T) *exchanger.Result {
	t.Helper()
	res, err := exchanger.NewDefault().Run(thermo.Defaults())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestReportPanels(t *testing.T) {
	res := solvedReference(t)
	sum, err := metrics.Summarize(res.State)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	out := Report(res, &sum)
	for _, want := range []string{
		"SOLVED",
		"STREAMS",
		"CAPACITY",
		"PERFORMANCE",
		"LMTD CROSSCHECK",
		"47.4 -> 46.4 C",
		"25.5 -> 43.0 C",
		"0.799087",
		"Cr (minmax)",
		"F implied",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "bisection fallback") {
		t.Error("clean newton solve reported as a fallback")
	}
}

func TestReportWithoutCrosscheck(t *testing.T) {
	res := solvedReference(t)
	out := Report(res, nil)
	if strings.Contains(out, "CROSSCHECK") {
		t.Error("nil summary still rendered a crosscheck panel")
	}
	if !strings.Contains(out, "PERFORMANCE") {
		t.Error("performance panel missing")
	}
}

func TestReportBracketedStatus(t *testing.T) {
	res := solvedReference(t)
	res.Bracketed = true
	if !strings.Contains(Report(res, nil), "bisection fallback") {
		t.Error("bracketed result not flagged in the status line")
	}
}

func TestReportConventionLabel(t *testing.T) {
	res := solvedReference(t)
	res.Convention = thermo.ConvColdHot
	if !strings.Contains(Report(res, nil), "Cr (coldhot)") {
		t.Error("capacity panel does not name the coldhot convention")
	}
}

func TestSparklineSpansAxis(t *testing.T) {
	s := sparkline(1.6744, 1.0/17.5)
	if s == "" {
		t.Fatal("empty sparkline")
	}
	if got := sparkCaption(0.2); got != "eps, NTU 0..1.0" {
		t.Errorf("low-NTU caption = %q, want the floor axis", got)
	}
	if got := sparkCaption(2.5); got != "eps, NTU 0..5.0" {
		t.Errorf("caption = %q, want eps, NTU 0..5.0", got)
	}
}
