package profile

import (
	"errors"
	"testing"

	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/ingest"
)

var header = []string{
	"COMPRADOR",
	"PRODUÇÃO QTD. ITENS TOTAL",
	"QTD. RC_ITEM",
	"TMC GMP",
	"QTD. GMP EM ANDAMENTO",
}

func cfg() allocation.Config {
	c := allocation.Config{}
	c.SetDefaults()
	return c
}

func TestBuild(t *testing.T) {
	ds := ingest.NewDataset(header, [][]string{
		{" joão ", "40", "30", "120", "10"},
		{"", "1", "1", "1", "1"},
		{"maria", "", "20", "200", "20"},
	})
	profiles, err := Build(ds, map[string]float64{"JOAO": 5}, cfg(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("nameless row must be dropped, got %d profiles", len(profiles))
	}

	joao := profiles[0]
	if joao.Name != "JOAO" {
		t.Fatalf("expected canonical name JOAO, got %q", joao.Name)
	}
	if joao.BaseLoad() != 70 {
		t.Errorf("base load: got %v, want 70", joao.BaseLoad())
	}
	if joao.Supplemental != 5 {
		t.Errorf("supplemental: got %v, want 5", joao.Supplemental)
	}
	if joao.TargetQuota != 15 {
		t.Errorf("quota below threshold must stay at default, got %d", joao.TargetQuota)
	}
	if joao.Shortfall != 45 {
		t.Errorf("shortfall: got %v, want 45 (120-75)", joao.Shortfall)
	}
	if !joao.Eligible {
		t.Errorf("joao should be eligible")
	}

	maria := profiles[1]
	if maria.ProductionCount != 0 {
		t.Errorf("empty numeric cell must default to 0, got %v", maria.ProductionCount)
	}
	if maria.Eligible {
		t.Errorf("maria exceeds both eligibility ceilings, must be ineligible")
	}
}

func TestBuildReducedQuotaAtThreshold(t *testing.T) {
	ds := ingest.NewDataset(header, [][]string{
		{"ana", "100", "15", "10", "1"},
	})
	profiles, err := Build(ds, map[string]float64{"ANA": 5}, cfg(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles[0].TargetQuota != 2 {
		t.Errorf("base 115 + supplemental 5 reaches 120, quota must drop to 2, got %d", profiles[0].TargetQuota)
	}
	if profiles[0].Shortfall != 0 {
		t.Errorf("shortfall at threshold must be 0, got %v", profiles[0].Shortfall)
	}
}

func TestBuildEligibilityClauses(t *testing.T) {
	ds := ingest.NewDataset(header, [][]string{
		{"a", "0", "0", "200", "10"}, // slow but few in progress
		{"b", "0", "0", "200", "20"}, // slow and overloaded
		{"c", "0", "0", "100", "20"}, // fast enough
	})
	profiles, err := Build(ds, nil, cfg(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profiles[0].Eligible {
		t.Errorf("A: in-progress clause should grant eligibility")
	}
	if profiles[1].Eligible {
		t.Errorf("B: both clauses fail, must be ineligible")
	}
	if !profiles[2].Eligible {
		t.Errorf("C: cycle-time clause should grant eligibility")
	}
}

func TestBuildDuplicateNameLastWins(t *testing.T) {
	ds := ingest.NewDataset(header, [][]string{
		{"ana", "10", "0", "1", "1"},
		{"ANA ", "90", "0", "1", "1"},
	})
	profiles, err := Build(ds, nil, cfg(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected a single profile, got %d", len(profiles))
	}
	if profiles[0].ProductionCount != 90 {
		t.Errorf("last row must win, got production %v", profiles[0].ProductionCount)
	}
}

func TestBuildMissingColumn(t *testing.T) {
	ds := ingest.NewDataset([]string{"COMPRADOR", "QTD. RC_ITEM"}, nil)
	_, err := Build(ds, nil, cfg(), nil)
	var missing *ingest.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if missing.Column != ColProduction {
		t.Errorf("expected %q named, got %q", ColProduction, missing.Column)
	}
}
