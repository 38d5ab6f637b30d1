// Package csvtable reads comma-separated files into named-column records.
package csvtable

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Record maps a lowercase column name to its raw cell value.
type Record map[string]string

// SplitTable is a column-oriented table whose cells have been split into
// sub-lists. An empty cell is an empty (nil) slice, never [""].
type SplitTable struct {
	Header  []string
	Columns map[string][][]string
	Rows    int
}

// Column returns the values of one column; ok is false if the column is absent.
func (t SplitTable) Column(name string) ([][]string, bool) {
	c, ok := t.Columns[name]
	return c, ok
}

// KeyedRow is one row read as first column -> remaining columns.
type KeyedRow struct {
	Key  string
	Rest []string
}

// ReadHeader returns the first record of the file.
func ReadHeader(path string) ([]string, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// LoadDelimited reads path into one Record per data row. Without a header,
// columns are named by their 0-based index.
func LoadDelimited(path string, hasHeader bool) ([]Record, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}

	header, data := splitHeader(rows, hasHeader)
	out := make([]Record, 0, len(data))
	for _, row := range data {
		rec := make(Record, len(header))
		for i, col := range header {
			if _, dup := rec[col]; dup {
				continue
			}
			rec[col] = cell(row, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// LoadDelimitedWithFieldSplit reads path like LoadDelimited and then splits
// every cell on fieldDelim, trimming each piece. A cell whose pieces are all
// empty becomes an empty slice.
func LoadDelimitedWithFieldSplit(path string, fieldDelim string, hasHeader bool) (SplitTable, error) {
	rows, err := readAll(path)
	if err != nil {
		return SplitTable{}, err
	}

	header, data := splitHeader(rows, hasHeader)
	t := SplitTable{
		Header:  header,
		Columns: make(map[string][][]string, len(header)),
		Rows:    len(data),
	}
	for i, col := range header {
		if _, dup := t.Columns[col]; dup {
			continue
		}
		values := make([][]string, len(data))
		for r, row := range data {
			values[r] = SplitField(cell(row, i), fieldDelim)
		}
		t.Columns[col] = values
	}
	return t, nil
}

// LoadKeyed reads path as key -> rest-of-row after skipping skip lines. Keys
// keep file order; the first occurrence of a key wins.
func LoadKeyed(path string, skip int) ([]KeyedRow, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if skip > len(rows) {
		skip = len(rows)
	}

	seen := map[string]struct{}{}
	var out []KeyedRow
	for _, row := range rows[skip:] {
		key := cell(row, 0)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		var rest []string
		if len(row) > 1 {
			rest = append(rest, row[1:]...)
		}
		out = append(out, KeyedRow{Key: key, Rest: rest})
	}
	return out, nil
}

// SplitField splits s on delim and trims each piece. All-empty results
// collapse to nil.
func SplitField(s, delim string) []string {
	pieces := strings.Split(s, delim)
	nonEmpty := false
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
		if pieces[i] != "" {
			nonEmpty = true
		}
	}
	if !nonEmpty {
		return nil
	}
	return pieces
}

// NormalizeHeader lowercases and trims column names.
func NormalizeHeader(row []string) []string {
	out := make([]string, len(row))
	for i, h := range row {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

func splitHeader(rows [][]string, hasHeader bool) ([]string, [][]string) {
	if hasHeader {
		return NormalizeHeader(rows[0]), rows[1:]
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	header := make([]string, width)
	for i := range header {
		header[i] = strconv.Itoa(i)
	}
	return header, rows
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvtable.read",
			Kind: domain.KindFormat,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	br := bufio.NewReader(f)
	// Drop a leading UTF-8 BOM.
	if head, perr := br.Peek(len(utf8BOM)); perr == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvtable.read",
			Kind: domain.KindFormat,
			Path: path,
			Err:  err,
		}
	}
	if len(rows) == 0 {
		return nil, &domain.OpError{
			Op:   "csvtable.read",
			Kind: domain.KindFormat,
			Path: path,
			Err:  domain.ErrEmptyFile,
		}
	}
	return rows, nil
}
