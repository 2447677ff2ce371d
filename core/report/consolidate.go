// Package report merges the engine output with the full buyer set into one
// reporting record per buyer, plus run-level summary statistics.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/model"
)

// Row is the consolidated record for one buyer. Buyers that were ineligible
// or never selected appear with zero assignments, never as an error.
type Row struct {
	Buyer            string
	Assignments      []string // grouping identifiers in assignment order
	ItemsAssigned    int      // occurrence units received this run
	Production       float64
	BasePending      float64
	TotalPending     float64 // pending + items assigned
	BaseInProgress   float64
	TotalInProgress  float64 // each assigned grouping counts as one process
	AverageCycleTime float64
	Supplemental     float64
	TotalGaugeIndex  float64 // base load + items assigned + supplemental
	Deviation        float64 // gauge index minus the sufficiency threshold
}

// Summary aggregates the run across all buyers.
type Summary struct {
	// ItemsMissing is the total shortfall of buyers still under the
	// threshold: the items needed for everyone to reach the target.
	ItemsMissing float64
	// UnassignedGroupings counts the groupings no buyer had capacity for.
	UnassignedGroupings int
	// MeanGaugeIndex and StdDevGaugeIndex describe how evenly the run
	// spread the load.
	MeanGaugeIndex   float64
	StdDevGaugeIndex float64
	MeanDeviation    float64
}

// Report is the complete outcome of one distribution run.
type Report struct {
	Rows    []Row
	Summary Summary
}

// Consolidate builds the report for the full buyer set, sorted by buyer
// name. The threshold must match the one the engine balanced toward.
func Consolidate(buyers []model.BuyerProfile, res allocation.Result, threshold float64) Report {
	buyers = append([]model.BuyerProfile(nil), buyers...)
	sort.Slice(buyers, func(i, j int) bool { return buyers[i].Name < buyers[j].Name })

	rows := make([]Row, 0, len(buyers))
	gauges := make([]float64, 0, len(buyers))
	deviations := make([]float64, 0, len(buyers))
	var missing float64

	for _, b := range buyers {
		assigned := res.Assignments[b.Name]
		items := 0
		if p, ok := res.Profiles[b.Name]; ok {
			items = p.Allocated
		}
		gauge := b.BaseLoad() + float64(items) + b.Supplemental
		dev := gauge - threshold
		rows = append(rows, Row{
			Buyer:            b.Name,
			Assignments:      assigned,
			ItemsAssigned:    items,
			Production:       b.ProductionCount,
			BasePending:      b.PendingItems,
			TotalPending:     b.PendingItems + float64(items),
			BaseInProgress:   b.InProgress,
			TotalInProgress:  b.InProgress + float64(len(assigned)),
			AverageCycleTime: b.AverageCycleTime,
			Supplemental:     b.Supplemental,
			TotalGaugeIndex:  gauge,
			Deviation:        dev,
		})
		gauges = append(gauges, gauge)
		deviations = append(deviations, dev)
		if dev < 0 {
			missing -= dev
		}
	}

	s := Summary{
		ItemsMissing:        missing,
		UnassignedGroupings: len(res.Unassigned),
	}
	if len(gauges) > 0 {
		s.MeanGaugeIndex = stat.Mean(gauges, nil)
		s.MeanDeviation = stat.Mean(deviations, nil)
	}
	if len(gauges) > 1 {
		s.StdDevGaugeIndex = stat.StdDev(gauges, nil)
	}
	return Report{Rows: rows, Summary: s}
}
