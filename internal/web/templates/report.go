package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// ReportFragment renders every discrepancy table of a report.
func ReportFragment(diffID string, report *core.Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="report" data-diff-id="`)
		h.text(diffID)
		h.raw(`">`)

		if report.Len() == 0 {
			h.raw(`<p>No discrepancies found.</p>`)
		}
		for _, name := range report.Names() {
			t, _ := report.Table(name)
			h.raw(`<h2>`)
			h.text(name)
			h.raw(` <span class="muted">(` + strconv.Itoa(t.Len()) + `)</span></h2>`)
			writeTable(h, t)
		}

		h.raw(`<p class="muted">Diff ID: `)
		h.text(diffID)
		h.raw(`</p></section>`)
		return h.err
	})
}

// ReportPage renders a report as a full page, for clients without htmx.
func ReportPage(diffID string, report *core.Report) templ.Component {
	return Layout("Roster Diff Report", ReportFragment(diffID, report))
}

func writeTable(h *htmlWriter, t *table.Table) {
	cols := t.Columns()
	h.raw(`<table><thead><tr>`)
	for _, c := range cols {
		h.raw(`<th>`)
		h.text(c.Name)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead><tbody>`)
	for row := 0; row < t.Len(); row++ {
		h.raw(`<tr>`)
		for _, c := range cols {
			h.raw(`<td>`)
			if v := c.Cells[row]; v.Valid {
				h.text(v.String)
			}
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}
