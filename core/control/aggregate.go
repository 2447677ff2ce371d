// Package control summarizes the optional publication-control export into a
// per-buyer supplemental workload. The dataset is secondary: when absent the
// attribution is simply zero everywhere.
package control

import (
	"strings"

	"github.com/tsoliveira/batchdist/core/ingest"
	"github.com/tsoliveira/batchdist/core/logger"
	"github.com/tsoliveira/batchdist/core/normalize"
)

// Column names of the control export. Only the grouping key is mandatory;
// absent filter columns skip their filter with a warning.
const (
	ColContractor = "CONTRATADOR"
	ColBuyer      = "COMPRADOR"
	ColFlag       = "GMP"
	ColStatus     = "EDITAL E GMC"
	ColQuantity   = "QUANTIDADE DE LINHAS"

	cancelledMarker = "CANCELADO"

	// The source system appends a 6-character code to the responsible
	// party's name. Stripping it is an assumption about that export, not
	// something this package can validate.
	keySuffixLen = 6
)

// Aggregate sums the control quantities per buyer. An empty dataset yields an
// empty map. Rows with an active secondary-workload flag or a cancelled
// status are excluded.
func Aggregate(ds ingest.Dataset, log logger.Logger) (map[string]float64, error) {
	if log == nil {
		log = logger.Nop{}
	}
	result := make(map[string]float64)
	if ds.Empty() {
		return result, nil
	}

	keyCol := ColContractor
	if !ds.HasColumn(keyCol) {
		keyCol = ColBuyer
		if !ds.HasColumn(keyCol) {
			return nil, &ingest.MissingColumnError{Column: ColContractor}
		}
	}

	hasFlag := ds.HasColumn(ColFlag)
	if !hasFlag {
		log.Warnf("column %q not found in control dataset, skipping the flag filter", ColFlag)
	}
	hasStatus := ds.HasColumn(ColStatus)
	if !hasStatus {
		log.Warnf("column %q not found in control dataset, skipping the cancellation filter", ColStatus)
	}
	hasQuantity := ds.HasColumn(ColQuantity)
	if !hasQuantity {
		log.Warnf("column %q not found in control dataset, quantities default to 0", ColQuantity)
	}

	for _, row := range ds.Rows() {
		if hasFlag && strings.TrimSpace(row[ColFlag]) != "" {
			continue
		}
		if hasStatus && strings.Contains(normalize.Text(row[ColStatus]), cancelledMarker) {
			continue
		}
		key := stripKeySuffix(normalize.Text(row[keyCol]))
		qty := 0.0
		if hasQuantity {
			qty = ingest.Number(row[ColQuantity])
		}
		result[key] += qty
	}
	return result, nil
}

func stripKeySuffix(key string) string {
	r := []rune(key)
	if len(r) <= keySuffixLen {
		return ""
	}
	return string(r[:len(r)-keySuffixLen])
}
