// Package profile builds per-buyer workload profiles from the buyer panel
// export, folding in the supplemental quantities from the control dataset.
package profile

import (
	"github.com/tsoliveira/batchdist/core/allocation"
	"github.com/tsoliveira/batchdist/core/ingest"
	"github.com/tsoliveira/batchdist/core/logger"
	"github.com/tsoliveira/batchdist/core/model"
	"github.com/tsoliveira/batchdist/core/normalize"
)

// Canonical column names of the buyer panel export.
const (
	ColBuyer      = "COMPRADOR"
	ColProduction = "PRODUCAO QTD. ITENS TOTAL"
	ColPending    = "QTD. RC_ITEM"
	ColCycleTime  = "TMC GMP"
	ColInProgress = "QTD. GMP EM ANDAMENTO"
)

// Build derives one profile per buyer. All five panel columns are required;
// a missing one aborts the run with a MissingColumnError. Rows without a
// buyer name are dropped. When two rows normalize to the same name the last
// one wins, matching the lookup-table behavior of the upstream export.
func Build(ds ingest.Dataset, supplemental map[string]float64, cfg allocation.Config, log logger.Logger) ([]model.BuyerProfile, error) {
	if log == nil {
		log = logger.Nop{}
	}
	if err := ds.Require(ColBuyer, ColProduction, ColPending, ColCycleTime, ColInProgress); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var profiles []model.BuyerProfile
	for _, row := range ds.Rows() {
		name := normalize.Text(row[ColBuyer])
		if name == "" {
			continue
		}
		p := model.BuyerProfile{
			Name:             name,
			ProductionCount:  ingest.Number(row[ColProduction]),
			PendingItems:     ingest.Number(row[ColPending]),
			AverageCycleTime: ingest.Number(row[ColCycleTime]),
			InProgress:       ingest.Number(row[ColInProgress]),
			Supplemental:     supplemental[name],
		}
		p.TargetQuota = cfg.DefaultQuota
		if p.BaseLoad()+p.Supplemental >= cfg.SufficiencyThreshold {
			p.TargetQuota = cfg.ReducedQuota
		}
		p.Eligible = p.AverageCycleTime <= cfg.MaxCycleTime || p.InProgress <= cfg.MaxInProgress
		p.RecomputeShortfall(cfg.SufficiencyThreshold)

		if at, dup := index[name]; dup {
			log.Warnw("duplicate buyer row, keeping the last one", map[string]any{"buyer": name})
			profiles[at] = p
			continue
		}
		index[name] = len(profiles)
		profiles = append(profiles, p)
	}
	return profiles, nil
}
