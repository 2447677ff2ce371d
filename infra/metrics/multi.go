package metrics

import coremetrics "github.com/tsoliveira/batchdist/core/metrics"

// MultiSink fans run records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordBuyerAllocations forwards to all sinks, returning the first error.
func (m *MultiSink) RecordBuyerAllocations(allocs []coremetrics.BuyerAllocation) error {
	for _, s := range m.Sinks {
		if err := s.RecordBuyerAllocations(allocs); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary forwards to all sinks, returning the first error.
func (m *MultiSink) RecordRunSummary(sum coremetrics.RunSummary) error {
	for _, s := range m.Sinks {
		if err := s.RecordRunSummary(sum); err != nil {
			return err
		}
	}
	return nil
}
