package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/tsoliveira/batchdist/core/metrics"
)

// PromSink records distribution runs in Prometheus metrics.
type PromSink struct {
	buyerItems   *prometheus.CounterVec
	runGroupings *prometheus.CounterVec
	itemsMissing prometheus.Gauge
	runs         prometheus.Counter
}

// NewPromSink registers the run metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Already
// registered collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	buyerItems := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distribution_items_assigned_total",
		Help: "Occurrence units assigned, per buyer",
	}, []string{"buyer"})
	runGroupings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distribution_groupings_total",
		Help: "Groupings per run outcome",
	}, []string{"outcome"})
	itemsMissing := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "distribution_items_missing",
		Help: "Items still needed for every buyer to reach the target",
	})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "distribution_runs_total",
		Help: "Completed distribution runs",
	})

	if err := reg.Register(buyerItems); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			buyerItems = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runGroupings); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runGroupings = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(itemsMissing); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			itemsMissing = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		buyerItems:   buyerItems,
		runGroupings: runGroupings,
		itemsMissing: itemsMissing,
		runs:         runs,
	}, nil
}

// RecordBuyerAllocations increments the per-buyer counters.
func (s *PromSink) RecordBuyerAllocations(allocs []coremetrics.BuyerAllocation) error {
	for _, a := range allocs {
		s.buyerItems.WithLabelValues(a.Buyer).Add(float64(a.ItemsAssigned))
	}
	return nil
}

// RecordRunSummary updates the run-level metrics.
func (s *PromSink) RecordRunSummary(sum coremetrics.RunSummary) error {
	s.runGroupings.WithLabelValues("assigned").Add(float64(sum.AssignedGroupings))
	s.runGroupings.WithLabelValues("unassigned").Add(float64(sum.UnassignedGroupings))
	s.itemsMissing.Set(sum.ItemsMissing)
	s.runs.Inc()
	return nil
}
