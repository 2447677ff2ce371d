// Package metrics defines the observability records a distribution run emits
// and the sink interface infra adapters implement.
package metrics

import "time"

// BuyerAllocation is one buyer's outcome in a run.
type BuyerAllocation struct {
	RunID         string
	Buyer         string
	Groupings     int
	ItemsAssigned int
	GaugeIndex    float64
	Deviation     float64
}

// RunSummary describes a whole distribution run.
type RunSummary struct {
	RunID               string
	Buyers              int
	EligibleBuyers      int
	Groupings           int
	AssignedGroupings   int
	UnassignedGroupings int
	ItemsAssigned       int
	ItemsMissing        float64
	CompletedAt         time.Time
}

// Sink records allocation outcomes for observability purposes.
type Sink interface {
	RecordBuyerAllocations(allocs []BuyerAllocation) error
	RecordRunSummary(sum RunSummary) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordBuyerAllocations([]BuyerAllocation) error { return nil }
func (NopSink) RecordRunSummary(RunSummary) error              { return nil }
