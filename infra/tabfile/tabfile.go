// Package tabfile adapts delimited files to the ingest dataset contract.
// It is a thin I/O edge: all schema validation happens downstream.
package tabfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsoliveira/batchdist/core/ingest"
)

// Load reads a delimited file into a dataset. The delimiter is sniffed from
// the header line; exports from the source systems come both
// comma- and semicolon-separated.
func Load(path string) (ingest.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return ingest.Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	r := csv.NewReader(br)
	r.Comma = sniffDelimiter(br)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return ingest.Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return ingest.Dataset{}, nil
	}
	return ingest.NewDataset(records[0], records[1:]), nil
}

// Write renders a table as comma-separated records on w.
func Write(w io.Writer, table [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(table); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Save writes a rendered table as a comma-separated file.
func Save(path string, table [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, table); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// sniffDelimiter peeks at the first line and picks a semicolon when it
// appears without any comma.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Contains(line, ";") && !strings.Contains(line, ",") {
		return ';'
	}
	return ','
}
