package spiral

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
)

func leoScenario(name string, conf ExportConfig) (*Transfer, Parameters) {
	sc := NewSpacecraft(name, 90, 10, []EPThruster{NewGenericEP(1e-3, 3000)})
	params := NewParameters(Earth.GM(), 7000, 7050)
	return NewTransfer(sc, params, depDT, "graveyard orbit", conf), params
}

func TestStreamStatesCSV(t *testing.T) {
	xfer, _ := leoScenario("exporter", ExportConfig{Filename: "leo-export-test", AsCSV: true})
	rprt, err := xfer.Propagate()
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	defer os.Remove("trajectory-leo-export-test.csv")
	data, err := os.ReadFile("trajectory-leo-export-test.csv")
	if err != nil {
		t.Fatalf("trajectory file not written: %s", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "t,x,y,vx,vy,mass,radius,jd" {
		t.Fatalf("header reads %q", lines[0])
	}
	// One row per state: the departure state plus one per step.
	if len(lines) != int(rprt.Steps)+2 {
		t.Fatalf("%d lines for %d steps", len(lines), rprt.Steps)
	}
	if !strings.HasPrefix(lines[1], "0.000,7000.000,0.000,0.000000,7.546") {
		t.Fatalf("departure row reads %q", lines[1])
	}
	// 2018-11-08T00:00:00Z is JD 2458430.5.
	if !strings.HasSuffix(lines[1], ",2458430.500000") {
		t.Fatalf("departure row reads %q", lines[1])
	}
	for i, line := range lines[1:] {
		if cols := strings.Split(line, ","); len(cols) != 8 {
			t.Fatalf("row %d has %d columns", i, len(cols))
		}
	}
}

func TestStreamStatesThinned(t *testing.T) {
	conf := ExportConfig{
		Filename: "leo-thinned-test",
		AsCSV:    true,
		EveryN:   10,
		CSVAppend: func(s State) string {
			return fmt.Sprintf("%.6f", s.VNorm())
		},
		CSVAppendHdr: func() string {
			return "speed(km/s)"
		},
	}
	xfer, _ := leoScenario("thinned", conf)
	rprt, err := xfer.Propagate()
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	defer os.Remove("trajectory-leo-thinned-test.csv")
	data, err := os.ReadFile("trajectory-leo-thinned-test.csv")
	if err != nil {
		t.Fatalf("trajectory file not written: %s", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "t,x,y,vx,vy,mass,radius,jd,speed(km/s)" {
		t.Fatalf("header reads %q", lines[0])
	}
	// Every tenth state, and the terminal state lands regardless.
	states := int(rprt.Steps) + 1
	rows := (states-1)/10 + 1
	if (states-1)%10 != 0 {
		rows++
	}
	if len(lines) != rows+1 {
		t.Fatalf("%d lines for %d states", len(lines), states)
	}
	lastRow := strings.Split(lines[len(lines)-1], ",")
	if len(lastRow) != 9 {
		t.Fatalf("terminal row has %d columns", len(lastRow))
	}
	if exp := fmt.Sprintf("%.3f", float64(rprt.Steps)*50); lastRow[0] != exp {
		t.Fatalf("terminal row is at t=%s, expected %s", lastRow[0], exp)
	}
}

func TestWriteSummary(t *testing.T) {
	xfer, params := leoScenario("summarized", ExportConfig{Filename: "leo-summary-test", Summary: true})
	rprt, err := xfer.Propagate()
	if err != nil {
		t.Fatalf("propagation failed: %s", err)
	}
	defer os.Remove("summary-leo-summary-test.json")
	data, err := os.ReadFile("summary-leo-summary-test.json")
	if err != nil {
		t.Fatalf("summary file not written: %s", err)
	}
	var sum Summary
	if err = json.Unmarshal(data, &sum); err != nil {
		t.Fatalf("summary does not parse: %s", err)
	}
	if sum.Name != "leo-summary-test" || sum.Target != "graveyard orbit" || !sum.Reached {
		t.Fatalf("summary reads %s", sum)
	}
	if sum.Start != "2018-11-08T00:00:00Z" {
		t.Fatalf("start=%s", sum.Start)
	}
	if sum.Steps != rprt.Steps || sum.FinalRadius < params.ArrivalRadius {
		t.Fatalf("summary does not match the report: %+v", sum)
	}
	// No CSV was requested, so none must be written.
	if _, err = os.Stat("trajectory-leo-summary-test.csv"); !os.IsNotExist(err) {
		t.Fatal("a trajectory file was written without export.csv")
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("an empty config is useless")
	}
	if (ExportConfig{AsCSV: true}).IsUseless() || (ExportConfig{Summary: true}).IsUseless() {
		t.Fatal("a config with an output is not useless")
	}
}
