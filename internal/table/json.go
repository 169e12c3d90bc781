package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the table as an array of row objects. Fields keep
// column order; int cells are numbers, text cells strings, nulls null.
func (t *Table) MarshalJSON() ([]byte, error) {
	keys := make([][]byte, len(t.columns))
	for i, c := range t.columns {
		k, err := json.Marshal(c.Name)
		if err != nil {
			return nil, fmt.Errorf("encode column name %q: %w", c.Name, err)
		}
		keys[i] = k
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for row := 0; row < t.rows; row++ {
		if row > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for i, c := range t.columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[i])
			buf.WriteByte(':')
			if err := writeCell(&buf, c, row); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

func writeCell(buf *bytes.Buffer, c *Column, row int) error {
	v := c.Cells[row]
	if !v.Valid {
		buf.WriteString("null")
		return nil
	}

	if c.Type == TypeInt {
		n := ParseInt(v)
		if !n.Valid {
			return fmt.Errorf("column %q row %d: %q is not an integer", c.Name, row, v.String)
		}
		b, err := json.Marshal(n.Int64)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}

	b, err := json.Marshal(v.String)
	if err != nil {
		return fmt.Errorf("column %q row %d: %w", c.Name, row, err)
	}
	buf.Write(b)
	return nil
}

// Records returns the table as a slice of row maps. Int cells are int64,
// text cells string, nulls nil. Intended for templates and tests.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, t.rows)
	for row := range out {
		rec := make(map[string]any, len(t.columns))
		for _, c := range t.columns {
			v := c.Cells[row]
			switch {
			case !v.Valid:
				rec[c.Name] = nil
			case c.Type == TypeInt:
				rec[c.Name] = ParseInt(v).Int64
			default:
				rec[c.Name] = v.String
			}
		}
		out[row] = rec
	}
	return out
}
