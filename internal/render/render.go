// Package render writes diff reports for terminal output.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// NoDiscrepancies is printed by Text for an empty report.
const NoDiscrepancies = "No discrepancies found."

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: expected text or json", s)
}

// Write renders r in the given format.
func Write(w io.Writer, r *core.Report, f Format) error {
	if f == FormatJSON {
		return JSON(w, r)
	}
	return Text(w, r)
}

// JSON writes the report object followed by a newline. Encoding failures
// are report errors.
func JSON(w io.Writer, r *core.Report) error {
	b, err := core.EncodeReport(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// Text writes each discrepancy table under a "name (rows)" title, in report
// order. Null cells are left blank.
func Text(w io.Writer, r *core.Report) error {
	if r.Len() == 0 {
		_, err := fmt.Fprintln(w, NoDiscrepancies)
		return err
	}

	for i, name := range r.Names() {
		t, _ := r.Table(name)
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", name, t.Len()); err != nil {
			return err
		}
		writeTable(w, t)
	}
	return nil
}

func writeTable(w io.Writer, t *table.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Names())
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	cols := t.Columns()
	for row := 0; row < t.Len(); row++ {
		record := make([]string, len(cols))
		for i, c := range cols {
			if v := c.Cells[row]; v.Valid {
				record[i] = v.String
			}
		}
		tw.Append(record)
	}
	tw.Render()
}
