package ingest

import "fmt"

// MissingColumnError indicates a required input column is absent. It is fatal
// for the run: no allocation is attempted on a schema that does not match.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// MissingGroupingKeyError indicates the grouping dataset has no column
// carrying the tracking-number marker, so no grouping identifiers can be
// derived. Fatal.
type MissingGroupingKeyError struct{}

func (e *MissingGroupingKeyError) Error() string {
	return "no tracking-number column found in grouping dataset"
}
