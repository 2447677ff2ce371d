// Package ingest defines the tabular contract the allocation pipeline
// consumes. Loaders hand datasets over as raw cell text; column names are
// canonicalized on construction so lookups are case and accent insensitive.
package ingest

import (
	"strconv"
	"strings"

	"github.com/tsoliveira/batchdist/core/normalize"
)

// Row holds one record keyed by canonical column name. Absent keys and empty
// cells both mean "no value".
type Row map[string]string

// Dataset is an immutable snapshot of one uploaded table.
type Dataset struct {
	columns []string
	rows    []Row
}

// NewDataset builds a dataset from a header and positional records. Column
// names are normalized; records shorter than the header leave the trailing
// cells absent.
func NewDataset(header []string, records [][]string) Dataset {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = normalize.Text(h)
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := make(Row, len(cols))
		for i, col := range cols {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return Dataset{columns: cols, rows: rows}
}

// Columns returns the canonical column names in header order.
func (d Dataset) Columns() []string { return d.columns }

// Rows returns the records. Callers must not mutate them.
func (d Dataset) Rows() []Row { return d.rows }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.rows) }

// Empty reports whether the dataset has no records and no header, which is
// how an absent optional upload is represented.
func (d Dataset) Empty() bool { return len(d.columns) == 0 && len(d.rows) == 0 }

// HasColumn reports whether the canonical column exists in the header.
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// FindColumn returns the first column whose canonical name contains the
// given marker.
func (d Dataset) FindColumn(marker string) (string, bool) {
	for _, c := range d.columns {
		if strings.Contains(c, marker) {
			return c, true
		}
	}
	return "", false
}

// Require returns a MissingColumnError naming the first absent column.
func (d Dataset) Require(names ...string) error {
	for _, n := range names {
		if !d.HasColumn(n) {
			return &MissingColumnError{Column: n}
		}
	}
	return nil
}

// Number coerces a cell to a float. Empty and unparseable cells yield 0; a
// decimal comma is accepted since the source exports use pt-BR locale.
func Number(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	cell = strings.ReplaceAll(cell, ",", ".")
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0
	}
	return v
}
