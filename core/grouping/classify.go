// Package grouping derives ranked procurement groupings from the tracking
// export. Identifier classification lives here and nowhere else: ranking and
// reporting must agree on a grouping's weight and type.
package grouping

import (
	"strings"

	"github.com/tsoliveira/batchdist/core/model"
	"github.com/tsoliveira/batchdist/core/normalize"
)

const (
	markerHigh    = "EA"
	markerMid     = "PID"
	markerAuction = "PREG"
)

// Weight returns the priority weight of an identifier: 3 for the EA marker,
// 2 for PID, 1 otherwise. Plain substring containment, no position rules.
func Weight(id string) int {
	id = normalize.Text(id)
	switch {
	case strings.Contains(id, markerHigh):
		return 3
	case strings.Contains(id, markerMid):
		return 2
	default:
		return 1
	}
}

// TypeOf tags an identifier as an auction when it carries the bidding-process
// marker.
func TypeOf(id string) model.GroupingType {
	if strings.Contains(normalize.Text(id), markerAuction) {
		return model.GroupingAuction
	}
	return model.GroupingOther
}
