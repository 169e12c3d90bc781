package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// UploadForm describes the columns each export must contain.
type UploadForm struct {
	ExtranetColumns []string
	OperooColumns   []string
	MaxFileSizeMB   int64
}

// UploadPage renders the upload form. Submissions are posted with htmx and
// the report replaces the #result element.
func UploadPage(form UploadForm) templ.Component {
	return Layout("Roster Diff", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Roster Diff</h1>`)
		h.raw(`<p class="muted">Compare an Extranet roster export with an Operoo profiles export.</p>`)
		h.raw(`<form action="/diff" method="post" enctype="multipart/form-data" hx-post="/diff" hx-encoding="multipart/form-data" hx-target="#result" hx-indicator="#busy">`)
		fileInput(h, "extranet", "Extranet report (CSV)", ".csv,text/csv", form.ExtranetColumns)
		fileInput(h, "operoo", "Operoo report (XML spreadsheet)", ".xls,.xml", form.OperooColumns)
		h.raw(`<p class="muted">Maximum upload size: `)
		h.text(strconv.FormatInt(form.MaxFileSizeMB, 10))
		h.raw(` MB.</p><button type="submit">Compare</button> <span id="busy" class="htmx-indicator muted">Comparing...</span></form>`)
		h.raw(`<div id="result"></div>`)
		return h.err
	}))
}

func fileInput(h *htmlWriter, name, label, accept string, columns []string) {
	h.raw(`<p><label for="` + name + `">`)
	h.text(label)
	h.raw(`</label><br><input type="file" id="` + name + `" name="` + name + `" accept="` + accept + `" required><br>`)
	h.raw(`<small class="muted">Required columns: `)
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = `"` + c + `"`
	}
	h.text(strings.Join(quoted, ", "))
	h.raw(`</small></p>`)
}
