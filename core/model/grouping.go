package model

// GroupingType tags a grouping by its procurement modality.
type GroupingType string

const (
	// GroupingAuction marks groupings that go through a bidding process.
	GroupingAuction GroupingType = "AUCTION"
	// GroupingOther covers every other modality.
	GroupingOther GroupingType = "OTHER"
)

// Grouping is one procurement batch, deduplicated by canonical identifier.
// The record is immutable once built.
type Grouping struct {
	ID          string       // canonical tracking identifier
	Weight      int          // priority weight, 3 > 2 > 1
	Type        GroupingType // modality tag derived from the identifier
	Occurrences int          // raw rows sharing this identifier
}
