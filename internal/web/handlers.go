package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/logging"
	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/web/templates"
)

// Multipart field names of the two exports.
const (
	fieldExtranet = "extranet"
	fieldOperoo   = "operoo"
)

// diffIDHeader carries the diff ID on every diff response.
const diffIDHeader = "X-Diff-ID"

// multipartMemory is the part of a multipart body held in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

var errFileTooLarge = errors.New("file too large")

// handleIndex renders the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	render(w, r, templates.UploadPage(templates.UploadForm{
		ExtranetColumns: schema.Names(schema.ExtranetFieldSpecs),
		OperooColumns:   schema.Names(schema.OperooFieldSpecs),
		MaxFileSizeMB:   s.cfg.Upload.MaxFileSize >> 20,
	}))
}

// handleDiffPage compares the uploaded exports and renders the HTML report:
// a fragment for htmx, a full page otherwise.
func (s *Server) handleDiffPage(w http.ResponseWriter, r *http.Request) {
	res, ok := s.runDiff(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		render(w, r, templates.ReportFragment(res.ID, res.Report))
		return
	}
	render(w, r, templates.ReportPage(res.ID, res.Report))
}

// handleDiffAPI compares the uploaded exports and returns the JSON report.
func (s *Server) handleDiffAPI(w http.ResponseWriter, r *http.Request) {
	res, ok := s.runDiff(w, r)
	if !ok {
		return
	}

	body, err := core.EncodeReport(res.Report)
	if err != nil {
		respondDiffError(w, r, err, statusFor(err), res.ID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.FromContext(r.Context()).Warn("write report", "diff_id", res.ID, "error", err)
	}
}

// runDiff reads both exports from the multipart form and runs the diff.
// On failure it writes the error response and returns false.
func (s *Server) runDiff(w http.ResponseWriter, r *http.Request) (*core.DiffResult, bool) {
	extranet, operoo, err := s.readExports(w, r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		respondError(w, r, err, status)
		return nil, false
	}

	res, err := s.service.Diff(r.Context(), extranet, operoo)
	if err != nil {
		respondDiffError(w, r, err, statusFor(err), res.ID)
		return nil, false
	}

	w.Header().Set(diffIDHeader, res.ID)
	return res, true
}

func (s *Server) readExports(w http.ResponseWriter, r *http.Request) (extranet, operoo []byte, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: limit is %d bytes", errFileTooLarge, tooLarge.Limit)
		}
		return nil, nil, fmt.Errorf("no file provided: %w", err)
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	if extranet, err = formFile(r, fieldExtranet); err != nil {
		return nil, nil, err
	}
	if operoo, err = formFile(r, fieldOperoo); err != nil {
		return nil, nil, err
	}
	return extranet, operoo, nil
}

func formFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("no file provided for %q", field)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", field, err)
	}
	return data, nil
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Diffs core.LimiterStatus `json:"diffs"`
	Rules int                `json:"rules"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, StatusResponse{
		Diffs: s.service.Status(),
		Rules: core.RuleCount(),
	})
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string][]string{"rules": core.RuleNames()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// render writes a component, logging failures since headers are already sent.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render error", "path", r.URL.Path, "error", err)
	}
}
