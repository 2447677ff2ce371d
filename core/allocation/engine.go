// Package allocation implements the greedy distribution of ranked groupings
// across eligible buyers. Each assignment goes to the buyer furthest below
// the sufficiency threshold that still has quota capacity, consuming capacity
// proportionally to the grouping's occurrence count.
package allocation

import (
	"sort"

	"github.com/tsoliveira/batchdist/core/logger"
	"github.com/tsoliveira/batchdist/core/model"
)

// Result is the outcome of one distribution run.
type Result struct {
	// Assignments maps buyer name to grouping identifiers in assignment order.
	Assignments map[string][]string
	// Profiles is the post-run state of the eligible buyers, keyed by name.
	Profiles map[string]model.BuyerProfile
	// Unassigned lists the groupings no buyer had capacity for, in ranked
	// order. Demand exceeding total capacity is an expected outcome, not an
	// error.
	Unassigned []string
	// ItemsAssigned is the total occurrence units handed out.
	ItemsAssigned int
}

// Engine runs the greedy balancer. It is a pure batch computation: one call
// consumes immutable snapshots and returns a complete result, with no state
// carried between runs.
type Engine struct {
	cfg Config
	log logger.Logger
}

// New returns an Engine with the given thresholds.
func New(cfg Config, log logger.Logger) Engine {
	if log == nil {
		log = logger.Nop{}
	}
	return Engine{cfg: cfg, log: log}
}

// Allocate assigns the ranked groupings to the eligible buyers. The input
// slices are not mutated. Buyers are scanned in lexicographic name order, so
// equal shortfalls resolve to the lexicographically smallest name and two
// runs over identical inputs produce identical results.
func (e Engine) Allocate(eligible []model.BuyerProfile, ranked []model.Grouping) Result {
	buyers := make([]*model.BuyerProfile, 0, len(eligible))
	for _, p := range eligible {
		if !p.Eligible {
			continue
		}
		cp := p
		buyers = append(buyers, &cp)
	}
	sort.Slice(buyers, func(i, j int) bool { return buyers[i].Name < buyers[j].Name })

	res := Result{
		Assignments: make(map[string][]string),
		Profiles:    make(map[string]model.BuyerProfile, len(buyers)),
	}

	for _, g := range ranked {
		selected := e.pick(buyers, g.Occurrences)
		if selected == nil {
			res.Unassigned = append(res.Unassigned, g.ID)
			continue
		}
		res.Assignments[selected.Name] = append(res.Assignments[selected.Name], g.ID)
		selected.Allocated += g.Occurrences
		selected.RecomputeShortfall(e.cfg.SufficiencyThreshold)
		res.ItemsAssigned += g.Occurrences
		e.log.Debugf("assigned %s (%d items) to %s, shortfall now %.0f",
			g.ID, g.Occurrences, selected.Name, selected.Shortfall)
	}

	for _, b := range buyers {
		res.Profiles[b.Name] = *b
	}
	return res
}

// pick returns the buyer with the largest shortfall among those the grouping
// fits into without busting their quota. The strict comparison keeps the
// first hit of the lexicographic scan on ties.
func (e Engine) pick(buyers []*model.BuyerProfile, units int) *model.BuyerProfile {
	var selected *model.BuyerProfile
	for _, b := range buyers {
		if !b.HasCapacityFor(units) {
			continue
		}
		if selected == nil || b.Shortfall > selected.Shortfall {
			selected = b
		}
	}
	return selected
}
