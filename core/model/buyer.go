package model

// BuyerProfile represents one buyer's workload state for a distribution run.
// Profiles are built once per run from the buyer panel export and mutated
// only by the allocation engine through the Allocated counter.
type BuyerProfile struct {
	Name             string  // canonical buyer name, the allocation key
	ProductionCount  float64 // total items produced (PDT)
	PendingItems     float64 // pending requisition items (QIC)
	AverageCycleTime float64 // average cycle time of in-progress processes (TMC)
	InProgress       float64 // processes currently in progress (GMP)
	Supplemental     float64 // workload attributed from the control dataset (QEP)

	TargetQuota int     // max occurrence units this buyer may receive this run
	Shortfall   float64 // remaining distance below the sufficiency threshold
	Eligible    bool    // whether the buyer may receive groupings at all

	Allocated int // occurrence units assigned so far this run
}

// BaseLoad is the buyer's workload before supplemental and assigned items.
func (b BuyerProfile) BaseLoad() float64 {
	return b.ProductionCount + b.PendingItems
}

// TotalLoad is the workload the sufficiency threshold is measured against.
func (b BuyerProfile) TotalLoad() float64 {
	return b.BaseLoad() + b.Supplemental + float64(b.Allocated)
}

// RecomputeShortfall refreshes Shortfall against the given threshold. The
// result is clamped at zero so it shrinks monotonically as units are
// assigned.
func (b *BuyerProfile) RecomputeShortfall(threshold float64) {
	s := threshold - b.TotalLoad()
	if s < 0 {
		s = 0
	}
	b.Shortfall = s
}

// HasCapacityFor reports whether the buyer can take on the given number of
// occurrence units without exceeding its quota.
func (b BuyerProfile) HasCapacityFor(units int) bool {
	return b.Allocated < b.TargetQuota && b.Allocated+units <= b.TargetQuota
}
