// Package templates renders the HTML pages and fragments of the web UI as
// templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTMXScript is the htmx build loaded by Layout.
const HTMXScript = "https://unpkg.com/htmx.org@1.9.12"

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s HTML-escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Layout wraps body in the page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script src="` + HTMXScript + `"></script>`)
		h.raw(`<style>body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:64rem;padding:0 1rem}`)
		h.raw(`table{border-collapse:collapse;margin-bottom:1.5rem}th,td{border:1px solid #ccc;padding:.25rem .5rem;text-align:left}`)
		h.raw(`.alert{border:1px solid #c33;background:#fee;padding:.75rem;border-radius:4px}.muted{color:#666}</style>`)
		h.raw(`</head><body>`)
		h.component(ctx, body)
		h.raw(`</body></html>`)
		return h.err
	})
}
