package minercars

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Schema is the ordered header row of a tabular resource. It is returned
// alongside the data it describes and threaded explicitly through calls;
// nothing here is shared mutable state.
type Schema []string

// Index returns the column position for a header name, or -1 if absent.
func (s Schema) Index(name string) int {
	for i, h := range s {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Lookup fetches the named column from a data row. The second return is
// false when the column is absent from the schema or the row is short.
func (s Schema) Lookup(row []string, name string) (string, bool) {
	i := s.Index(name)
	if i < 0 || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// readTable reads a delimited file into its header schema and data rows.
// A missing file yields an empty table, not an error.
func readTable(path string) (Schema, [][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged, factories substitute defaults
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return Schema(records[0]), records[1:], nil
}

// writeTable rewrites the whole file from the given schema and rows,
// replacing any prior content. The rows go to a temporary file in the same
// directory first, which then replaces the target by rename, so a failed
// write never leaves the prior file half-truncated.
func writeTable(path string, schema Schema, rows [][]string) error {
	tempPath := filepath.Join(filepath.Dir(path), "temp_"+filepath.Base(path))
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", tempPath, err)
	}
	if err := writeRecords(f, schema, rows); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("could not write %q: %w", tempPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("could not flush %q: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("could not rename %q to %q: %w", tempPath, path, err)
	}
	return nil
}

func writeRecords(w io.Writer, schema Schema, rows [][]string) error {
	cw := csv.NewWriter(w)
	if len(schema) > 0 {
		if err := cw.Write(schema); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Parsing helpers for the record factories. They never fail: an invalid or
// missing value becomes the column default.

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseMoney(s string) Money {
	m, err := ParseMoney(strings.TrimSpace(s))
	if err != nil {
		return Money{}
	}
	return m
}

func parseBool(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "yes")
}
