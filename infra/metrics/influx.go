package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/tsoliveira/batchdist/core/logger"
	coremetrics "github.com/tsoliveira/batchdist/core/metrics"
)

// InfluxSink writes run outcomes to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string, log logger.Logger) *InfluxSink {
	if log == nil {
		log = logger.Nop{}
	}
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      log,
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// when the health check fails, so a missing dashboard never blocks a run.
func NewInfluxSinkWithFallback(cfg coremetrics.Config, log logger.Logger) coremetrics.Sink {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket, log)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordBuyerAllocations writes one point per buyer.
func (s *InfluxSink) RecordBuyerAllocations(allocs []coremetrics.BuyerAllocation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, a := range allocs {
		p := write.NewPointWithMeasurement("buyer_allocation").
			AddTag("run_id", a.RunID).
			AddTag("buyer", a.Buyer).
			AddField("groupings", a.Groupings).
			AddField("items_assigned", a.ItemsAssigned).
			AddField("gauge_index", a.GaugeIndex).
			AddField("deviation", a.Deviation).
			SetTime(time.Now())
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary writes the run-level point.
func (s *InfluxSink) RecordRunSummary(sum coremetrics.RunSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("distribution_run").
		AddTag("run_id", sum.RunID).
		AddField("buyers", sum.Buyers).
		AddField("eligible_buyers", sum.EligibleBuyers).
		AddField("groupings", sum.Groupings).
		AddField("assigned_groupings", sum.AssignedGroupings).
		AddField("unassigned_groupings", sum.UnassignedGroupings).
		AddField("items_assigned", sum.ItemsAssigned).
		AddField("items_missing", sum.ItemsMissing).
		SetTime(sum.CompletedAt)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
