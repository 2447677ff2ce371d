// Package app wires the configuration, the input adapters, the allocation
// engine and the observability sinks into one runnable service.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tsoliveira/batchdist/config"
	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/control"
	"github.com/tsoliveira/batchdist/core/grouping"
	"github.com/tsoliveira/batchdist/core/ingest"
	corelogger "github.com/tsoliveira/batchdist/core/logger"
	coremetrics "github.com/tsoliveira/batchdist/core/metrics"
	"github.com/tsoliveira/batchdist/core/profile"
	"github.com/tsoliveira/batchdist/core/report"
	"github.com/tsoliveira/batchdist/infra/logger"
	"github.com/tsoliveira/batchdist/infra/metrics"
	"github.com/tsoliveira/batchdist/infra/tabfile"
)

// Service runs one complete distribution from configured inputs to the
// consolidated report.
type Service struct {
	cfg    *config.Config
	log    corelogger.Logger
	sink   coremetrics.Sink
	influx *metrics.InfluxSink
}

// New creates a Service from the configuration, building the metrics sinks
// the same way regardless of how many are enabled.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	var influx *metrics.InfluxSink
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics, logger.New("influx-sink"))
		if is, ok := sink.(*metrics.InfluxSink); ok {
			influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	return &Service{cfg: cfg, log: logg, sink: sink, influx: influx}, nil
}

// Run executes the distribution once. When the Prometheus sink is enabled it
// then serves /metrics until the context is canceled so the run can be
// scraped.
func (s *Service) Run(ctx context.Context) error {
	rep, err := s.RunOnce()
	if err != nil {
		return err
	}

	table := rep.Table()
	if s.cfg.Output.Path != "" {
		if err := tabfile.Save(s.cfg.Output.Path, table); err != nil {
			return err
		}
		s.log.Infof("report written to %s", s.cfg.Output.Path)
	} else if err := tabfile.Write(os.Stdout, table); err != nil {
		return err
	}

	if s.cfg.Metrics.PrometheusEnabled {
		s.log.Infof("serving metrics on %s until interrupted", s.cfg.Metrics.PrometheusAddr)
		return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr)
	}
	return nil
}

// RunOnce loads the inputs, runs the engine and records the outcome. It is
// the pure-batch part of Run, separated so hosts embedding the service can
// skip the output and serving concerns.
func (s *Service) RunOnce() (report.Report, error) {
	runID := uuid.NewString()
	s.log.Infow("starting distribution run", map[string]any{"run_id": runID})

	buyersDS, err := tabfile.Load(s.cfg.Inputs.Buyers)
	if err != nil {
		return report.Report{}, fmt.Errorf("buyers input: %w", err)
	}
	groupingsDS, err := tabfile.Load(s.cfg.Inputs.Groupings)
	if err != nil {
		return report.Report{}, fmt.Errorf("groupings input: %w", err)
	}
	controlDS := ingest.Dataset{}
	if s.cfg.Inputs.Control != "" {
		controlDS, err = tabfile.Load(s.cfg.Inputs.Control)
		if err != nil {
			return report.Report{}, fmt.Errorf("control input: %w", err)
		}
	}

	supplemental, err := control.Aggregate(controlDS, s.log)
	if err != nil {
		return report.Report{}, fmt.Errorf("control aggregation: %w", err)
	}
	profiles, err := profile.Build(buyersDS, supplemental, s.cfg.Allocation, s.log)
	if err != nil {
		return report.Report{}, fmt.Errorf("buyer profiles: %w", err)
	}
	records, err := grouping.FromDataset(groupingsDS)
	if err != nil {
		return report.Report{}, fmt.Errorf("grouping records: %w", err)
	}

	ranked := grouping.Rank(records)
	eligible := allocation.Eligible(profiles)
	engine := allocation.New(s.cfg.Allocation, s.log)
	res := engine.Allocate(eligible, ranked)
	rep := report.Consolidate(profiles, res, s.cfg.Allocation.SufficiencyThreshold)

	s.record(runID, rep, len(profiles), len(eligible), len(records), res.ItemsAssigned)
	s.log.Infow("distribution run complete", map[string]any{
		"run_id":               runID,
		"buyers":               len(profiles),
		"eligible_buyers":      len(eligible),
		"groupings":            len(records),
		"unassigned_groupings": rep.Summary.UnassignedGroupings,
		"items_assigned":       res.ItemsAssigned,
		"items_missing":        rep.Summary.ItemsMissing,
	})
	return rep, nil
}

func (s *Service) record(runID string, rep report.Report, buyers, eligible, groupings, itemsAssigned int) {
	allocs := make([]coremetrics.BuyerAllocation, 0, len(rep.Rows))
	assigned := 0
	for _, row := range rep.Rows {
		assigned += len(row.Assignments)
		allocs = append(allocs, coremetrics.BuyerAllocation{
			RunID:         runID,
			Buyer:         row.Buyer,
			Groupings:     len(row.Assignments),
			ItemsAssigned: row.ItemsAssigned,
			GaugeIndex:    row.TotalGaugeIndex,
			Deviation:     row.Deviation,
		})
	}
	if err := s.sink.RecordBuyerAllocations(allocs); err != nil {
		s.log.Errorf("record buyer allocations: %v", err)
	}
	sum := coremetrics.RunSummary{
		RunID:               runID,
		Buyers:              buyers,
		EligibleBuyers:      eligible,
		Groupings:           groupings,
		AssignedGroupings:   assigned,
		UnassignedGroupings: rep.Summary.UnassignedGroupings,
		ItemsAssigned:       itemsAssigned,
		ItemsMissing:        rep.Summary.ItemsMissing,
		CompletedAt:         time.Now(),
	}
	if err := s.sink.RecordRunSummary(sum); err != nil {
		s.log.Errorf("record run summary: %v", err)
	}
}

// Close releases the sinks.
func (s *Service) Close() error {
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
