package grouping

import (
	"sort"

	"github.com/tsoliveira/batchdist/core/ingest"
	"github.com/tsoliveira/batchdist/core/model"
	"github.com/tsoliveira/batchdist/core/normalize"
)

// TrackingMarker identifies the grouping identifier column in the export:
// any column containing it is used as the identifier source.
const TrackingMarker = "ACOMPANHAMENTO"

// FromDataset extracts the deduplicated grouping records from the tracking
// export. Rows with an empty identifier are dropped; identifiers are
// canonicalized before deduplication, and each record keeps the count of raw
// rows sharing it. Records come back in first-appearance order.
func FromDataset(ds ingest.Dataset) ([]model.Grouping, error) {
	col, ok := ds.FindColumn(TrackingMarker)
	if !ok {
		return nil, &ingest.MissingGroupingKeyError{}
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range ds.Rows() {
		id := normalize.Text(row[col])
		if id == "" {
			continue
		}
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}

	records := make([]model.Grouping, 0, len(order))
	for _, id := range order {
		records = append(records, model.Grouping{
			ID:          id,
			Weight:      Weight(id),
			Type:        TypeOf(id),
			Occurrences: counts[id],
		})
	}
	return records, nil
}

// Rank sorts groupings by (weight, occurrences) descending. The sort is
// stable so exact ties keep their first-appearance order.
func Rank(records []model.Grouping) []model.Grouping {
	ranked := make([]model.Grouping, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Occurrences > ranked[j].Occurrences
	})
	return ranked
}
