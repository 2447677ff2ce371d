package grouping

import (
	"errors"
	"testing"

	"github.com/tsoliveira/batchdist/core/ingest"
	"github.com/tsoliveira/batchdist/core/model"
)

func TestWeight(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"EA-001", 3},
		{"pregão-ea-77", 3},
		{"PID-002", 2},
		{"PLAIN-003", 1},
		{"", 1},
	}
	for _, c := range cases {
		if got := Weight(c.id); got != c.want {
			t.Errorf("Weight(%q) = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf("PREG-123"); got != model.GroupingAuction {
		t.Errorf("expected auction, got %s", got)
	}
	if got := TypeOf("pregão-55"); got != model.GroupingAuction {
		t.Errorf("accented marker should still classify as auction, got %s", got)
	}
	if got := TypeOf("PID-002"); got != model.GroupingOther {
		t.Errorf("expected other, got %s", got)
	}
}

func TestFromDataset(t *testing.T) {
	ds := ingest.NewDataset(
		[]string{"Nº ACOMPANHAMENTO"},
		[][]string{{" ea-001 "}, {"EA-001"}, {"PID-002"}, {""}, {"PLAIN-003"}},
	)
	records, err := FromDataset(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 deduplicated records, got %d", len(records))
	}
	if records[0].ID != "EA-001" || records[0].Occurrences != 2 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].Weight != 3 || records[1].Weight != 2 || records[2].Weight != 1 {
		t.Errorf("unexpected weights: %+v", records)
	}
}

func TestFromDatasetMissingKey(t *testing.T) {
	ds := ingest.NewDataset([]string{"OUTRA COLUNA"}, nil)
	_, err := FromDataset(ds)
	var missing *ingest.MissingGroupingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingGroupingKeyError, got %v", err)
	}
}

func TestRank(t *testing.T) {
	records := []model.Grouping{
		{ID: "PLAIN-003", Weight: 1, Occurrences: 4},
		{ID: "PID-002", Weight: 2, Occurrences: 4},
		{ID: "EA-001", Weight: 3, Occurrences: 4},
		{ID: "PID-BIG", Weight: 2, Occurrences: 9},
	}
	ranked := Rank(records)
	want := []string{"EA-001", "PID-BIG", "PID-002", "PLAIN-003"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Fatalf("rank %d: got %s, want %s (full: %+v)", i, ranked[i].ID, id, ranked)
		}
	}
	// input slice untouched
	if records[0].ID != "PLAIN-003" {
		t.Errorf("Rank must not mutate its input")
	}
}

func TestRankStableOnTies(t *testing.T) {
	records := []model.Grouping{
		{ID: "PID-A", Weight: 2, Occurrences: 3},
		{ID: "PID-B", Weight: 2, Occurrences: 3},
	}
	ranked := Rank(records)
	if ranked[0].ID != "PID-A" || ranked[1].ID != "PID-B" {
		t.Errorf("exact ties must keep first-appearance order: %+v", ranked)
	}
}
