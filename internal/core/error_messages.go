// # Error Codes Reference
//
// User-facing error messages carry a code that users can quote to support
// staff.
//
// # Format Errors (FMT001-FMT099)
//
//	FMT001 - The Extranet file is not an Extranet roster export
//	         Action: Export the roster as CSV from Extranet and try again
//	FMT002 - The Operoo file is not an Operoo XML spreadsheet export
//	         Action: Export the profiles report as "XML Spreadsheet" and try again
//
// # Read Errors (PRS001-PRS099)
//
//	PRS001 - The Extranet file could not be read
//	PRS002 - The Operoo file could not be read
//
// # Processing Errors (PRC001, RPT001)
//
//	PRC001 - The exports could not be compared, usually a missing column
//	RPT001 - The report could not be produced
//
// # Request Errors (FILE, DIF, RATE, AUTH)
//
//	FILE001 - File too large          Patterns: "file too large", "request body too large"
//	FILE004 - No file                 Patterns: "no file provided"
//	DIF001  - System busy             Patterns: "too many concurrent diffs"
//	RATE001 - Rate limited            Patterns: "rate limit"
//	AUTH001 - Missing or bad API key  Patterns: "api key"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error. Check application logs for the technical error.
//
// A *Error is classified by its Kind and Source. Any other error is matched
// case-insensitively against the patterns above; the first match wins.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgInvalidExtranet = UserMessage{
		Message: "The Extranet file is not an Extranet roster export",
		Action:  "Export the roster as CSV from Extranet and try again",
		Code:    "FMT001",
	}
	msgInvalidOperoo = UserMessage{
		Message: "The Operoo file is not an Operoo XML spreadsheet export",
		Action:  `Export the profiles report as "XML Spreadsheet" and try again`,
		Code:    "FMT002",
	}
	msgReadExtranet = UserMessage{
		Message: "The Extranet file could not be read",
		Action:  "Check the file is an unmodified Extranet CSV export",
		Code:    "PRS001",
	}
	msgReadOperoo = UserMessage{
		Message: "The Operoo file could not be read",
		Action:  "Check the file is an unmodified Operoo XML spreadsheet export",
		Code:    "PRS002",
	}
	msgProcessing = UserMessage{
		Message: "The exports could not be compared",
		Action:  "Check both exports include every required column",
		Code:    "PRC001",
	}
	msgReport = UserMessage{
		Message: "The report could not be produced",
		Action:  "Please try again or contact support",
		Code:    "RPT001",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins.
var errorPatterns = []errorPattern{
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Check you selected the right export file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Check you selected the right export file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Select both an Extranet and an Operoo export",
			Code:    "FILE004",
		},
	},
	{
		pattern: "too many concurrent diffs",
		msg: UserMessage{
			Message: "System is busy comparing other exports",
			Action:  "Please wait a moment and try again",
			Code:    "DIF001",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
	{
		pattern: "api key",
		msg: UserMessage{
			Message: "Missing or invalid API key",
			Action:  "Send a valid key in the X-API-Key header",
			Code:    "AUTH001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var de *Error
	if errors.As(err, &de) {
		return mapDiffError(de)
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

func mapDiffError(e *Error) UserMessage {
	switch e.Kind {
	case KindInvalidFormat:
		if e.Source == SourceOperoo {
			return msgInvalidOperoo
		}
		return msgInvalidExtranet
	case KindParse:
		if e.Source == SourceOperoo {
			return msgReadOperoo
		}
		return msgReadExtranet
	case KindProcessing:
		return msgProcessing
	case KindReport:
		return msgReport
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
