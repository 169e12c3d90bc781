package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// InferSchemaRows is the number of data rows sampled to infer column types.
const InferSchemaRows = 100

// ReadExtranet parses an Extranet CSV export into a table.
//
// Column types are inferred from the first InferSchemaRows rows: a column is
// TypeInt when every non-empty sampled cell is an integer literal, otherwise
// TypeText. Later cells that do not fit an int column become null. Empty
// cells are null. Short rows are padded with nulls.
func ReadExtranet(data []byte) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(CleanCSV(data)))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := DedupeHeaders(append([]string(nil), header...))

	cells := make([][]pgtype.Text, len(names))
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}
		if len(record) > len(names) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("invalid csv: line %d has %d fields, header has %d", line, len(record), len(names))
		}
		for i := range names {
			var v pgtype.Text
			if i < len(record) {
				v = ToText(record[i])
			}
			cells[i] = append(cells[i], v)
		}
	}

	cols := make([]*table.Column, len(names))
	for i, name := range names {
		cols[i] = inferColumn(name, cells[i])
	}
	return table.New(cols...)
}

// inferColumn types a column from its first InferSchemaRows cells.
func inferColumn(name string, cells []pgtype.Text) *table.Column {
	sample := cells
	if len(sample) > InferSchemaRows {
		sample = sample[:InferSchemaRows]
	}

	seen := false
	for _, v := range sample {
		if !v.Valid {
			continue
		}
		if !table.IsInt(v.String) {
			return table.NewTextColumn(name, cells)
		}
		seen = true
	}
	if !seen {
		return table.NewTextColumn(name, cells)
	}

	values := make([]pgtype.Int8, len(cells))
	for i, v := range cells {
		values[i] = table.ParseInt(v)
	}
	return table.NewIntColumn(name, values)
}
