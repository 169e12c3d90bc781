package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err, statusCode)
//  3. Error is mapped via core.MapError to get user-friendly message
//  4. Technical error + context is logged with request ID for correlation
//  5. User message is rendered in appropriate format for the client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/logging"
	"github.com/JonMunkholm/rosterdiff/internal/web/templates"
)

// ErrorResponse represents the JSON structure for API error responses.
// Error holds the diff failure message when there is one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	DiffID  string `json:"diff_id,omitempty"`
}

// statusFor picks the HTTP status for a failed diff.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrTooManyDiffs):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, core.ErrReport):
		return http.StatusInternalServerError
	case errors.Is(err, core.ErrInvalidFormat), errors.Is(err, core.ErrParse), errors.Is(err, core.ErrProcessing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError handles error responses with user-friendly messages.
// It logs the technical error server-side and returns an appropriate response
// based on the request type (HTMX, JSON, or HTML).
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	respondDiffError(w, r, err, statusCode, "")
}

func respondDiffError(w http.ResponseWriter, r *http.Request, err error, statusCode int, diffID string) {
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"diff_id", diffID,
	)

	if diffID != "" {
		w.Header().Set(diffIDHeader, diffID)
	}

	switch {
	case isHTMX(r):
		renderErrorPartial(w, r, userMsg, statusCode)
	case wantsJSON(r):
		resp := ErrorResponse{
			Error:   userMsg.Message,
			Message: userMsg.Message,
			Action:  userMsg.Action,
			Code:    userMsg.Code,
			DiffID:  diffID,
		}
		var de *core.Error
		if errors.As(err, &de) {
			resp.Error = de.Error()
		}
		writeJSON(w, r, statusCode, resp)
	default:
		respondErrorHTML(w, r, userMsg, statusCode)
	}
}

// respondErrorHTML writes a full HTML error page.
func respondErrorHTML(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	render(w, r, templates.ErrorPage(msg.Message, msg.Action, msg.Code))
}

// renderErrorPartial renders an HTMX-compatible error fragment.
// HTMX does not swap non-2xx responses by default, so the request asks for
// the swap explicitly.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("HX-Retarget", "#result")
	w.Header().Set("HX-Reswap", "innerHTML")
	w.WriteHeader(statusCode)
	render(w, r, templates.ErrorAlert(msg.Message, msg.Action, msg.Code))
}

// writeJSON encodes v as JSON with the given status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	// API routes default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
