package signals

import (
	"strconv"
	"strings"
)

// Value is one cell of a crawl export table. Cells are either blank,
// a number, or free text; numeric parsing happens once at load time.
type Value struct {
	Raw   string
	Num   float64
	IsNum bool
}

// Blank reports whether the cell holds no value.
func (v Value) Blank() bool {
	return strings.TrimSpace(v.Raw) == ""
}

// Table is one loaded crawl export: an ordered set of rows sharing a
// single data-driven schema. Column availability is table-wide; a column
// either exists for every row or for none.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewTable builds a table from a header and raw string rows. Short rows
// are padded with blank cells so every row has a slot for every column.
func NewTable(header []string, records [][]string) *Table {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		columns[i] = name
		if _, exists := index[name]; !exists && name != "" {
			index[name] = i
		}
	}

	rows := make([][]Value, 0, len(records))
	for _, record := range records {
		row := make([]Value, len(columns))
		for i := range columns {
			if i < len(record) {
				row[i] = parseCell(record[i])
			}
		}
		rows = append(rows, row)
	}

	return &Table{columns: columns, index: index, rows: rows}
}

func parseCell(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	v := Value{Raw: trimmed}
	if trimmed == "" {
		return v
	}
	if num, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		v.Num = num
		v.IsNum = true
	}
	return v
}

// Columns returns the column names in source order.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns all cells of the named column, row order preserved.
func (t *Table) Column(name string) ([]Value, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}
