package report

import (
	"math"
	"testing"

	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/model"
)

func TestConsolidate(t *testing.T) {
	buyers := []model.BuyerProfile{
		{Name: "ANA", ProductionCount: 40, PendingItems: 30, InProgress: 5, AverageCycleTime: 101.25, Supplemental: 10, Eligible: true},
		{Name: "BETO", ProductionCount: 200, PendingItems: 10, InProgress: 20, AverageCycleTime: 180, Eligible: false},
	}
	res := allocation.Result{
		Assignments: map[string][]string{"ANA": {"EA-001", "PID-002"}},
		Profiles: map[string]model.BuyerProfile{
			"ANA": {Name: "ANA", Allocated: 9},
		},
		Unassigned: []string{"G-9"},
	}

	rep := Consolidate(buyers, res, 120)
	if len(rep.Rows) != 2 {
		t.Fatalf("expected a row for every buyer, got %d", len(rep.Rows))
	}

	ana := rep.Rows[0]
	if ana.ItemsAssigned != 9 {
		t.Errorf("items assigned: got %d", ana.ItemsAssigned)
	}
	if ana.TotalGaugeIndex != 89 { // 70 base + 9 assigned + 10 supplemental
		t.Errorf("gauge index: got %v, want 89", ana.TotalGaugeIndex)
	}
	if ana.Deviation != -31 {
		t.Errorf("deviation: got %v, want -31", ana.Deviation)
	}
	if ana.TotalInProgress != 7 { // 5 base + 2 groupings
		t.Errorf("total in progress counts groupings, got %v", ana.TotalInProgress)
	}
	if ana.TotalPending != 39 {
		t.Errorf("total pending: got %v, want 39", ana.TotalPending)
	}

	beto := rep.Rows[1]
	if beto.ItemsAssigned != 0 || len(beto.Assignments) != 0 {
		t.Errorf("ineligible buyer must appear with zero assignments: %+v", beto)
	}
	if beto.TotalGaugeIndex != 210 {
		t.Errorf("beto gauge index: got %v, want 210", beto.TotalGaugeIndex)
	}

	// Only ANA is under the threshold.
	if rep.Summary.ItemsMissing != 31 {
		t.Errorf("items missing: got %v, want 31", rep.Summary.ItemsMissing)
	}
	if rep.Summary.UnassignedGroupings != 1 {
		t.Errorf("unassigned groupings: got %d, want 1", rep.Summary.UnassignedGroupings)
	}
	if math.Abs(rep.Summary.MeanGaugeIndex-149.5) > 1e-9 {
		t.Errorf("mean gauge index: got %v, want 149.5", rep.Summary.MeanGaugeIndex)
	}
	if rep.Summary.StdDevGaugeIndex <= 0 {
		t.Errorf("stddev must be positive for uneven loads, got %v", rep.Summary.StdDevGaugeIndex)
	}
}

func TestConsolidateEmpty(t *testing.T) {
	rep := Consolidate(nil, allocation.Result{}, 120)
	if len(rep.Rows) != 0 {
		t.Fatalf("expected no rows")
	}
	if rep.Summary.MeanGaugeIndex != 0 || rep.Summary.StdDevGaugeIndex != 0 {
		t.Errorf("empty summary must stay zero: %+v", rep.Summary)
	}
}

func TestTable(t *testing.T) {
	buyers := []model.BuyerProfile{
		{Name: "ANA", ProductionCount: 40, PendingItems: 30, InProgress: 5, AverageCycleTime: 101.25, Supplemental: 10},
	}
	res := allocation.Result{
		Assignments: map[string][]string{"ANA": {"EA-001", "PID-002"}},
		Profiles:    map[string]model.BuyerProfile{"ANA": {Name: "ANA", Allocated: 9}},
	}
	table := Consolidate(buyers, res, 120).Table()
	if len(table) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(table))
	}
	row := table[1]
	if len(row) != len(Header) {
		t.Fatalf("row width %d does not match header width %d", len(row), len(Header))
	}
	if row[1] != "EA-001, PID-002" {
		t.Errorf("assignments join: got %q", row[1])
	}
	if row[6] != "101.2" && row[6] != "101.3" {
		t.Errorf("cycle time must render at one decimal, got %q", row[6])
	}
	if row[10] != "89" {
		t.Errorf("gauge index must render at zero decimals, got %q", row[10])
	}
}
