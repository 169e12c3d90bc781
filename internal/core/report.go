package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// Report is the result of one diff: discrepancy tables keyed by rule name.
// Only non-empty tables are kept.
type Report struct {
	tables map[string]*table.Table
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{tables: make(map[string]*table.Table)}
}

// Add stores t under name if it has at least one row.
// Reports whether the table was kept.
func (r *Report) Add(name string, t *table.Table) bool {
	if t == nil || t.Len() == 0 {
		return false
	}
	r.tables[name] = t
	return true
}

// Names returns the names of the tables present, sorted.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the named discrepancy table.
func (r *Report) Table(name string) (*table.Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Len returns the number of discrepancy tables.
func (r *Report) Len() int { return len(r.tables) }

// Rows returns the total number of discrepancy rows across all tables.
func (r *Report) Rows() int {
	n := 0
	for _, t := range r.tables {
		n += t.Len()
	}
	return n
}

// MarshalJSON encodes the report as an object keyed by table name in
// sorted order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		rows, err := r.tables[name].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(rows)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
