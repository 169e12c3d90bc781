package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed diff.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "invalid_format"
	KindParse         ErrorKind = "parse"
	KindProcessing    ErrorKind = "processing"
	KindReport        ErrorKind = "report"
)

// Sentinels for errors.Is. A *Error matches the sentinel of its kind.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrParse         = errors.New("parse error")
	ErrProcessing    = errors.New("processing error")
	ErrReport        = errors.New("report error")
)

// Report sources named in errors.
const (
	SourceExtranet = "Extranet"
	SourceOperoo   = "Operoo"
)

// Error is returned by every failed diff. Its message is the single
// human-readable string handed back to the caller.
type Error struct {
	Kind   ErrorKind
	Source string // SourceExtranet, SourceOperoo, or empty when not source-specific
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidFormat:
		return fmt.Sprintf("The provided %s report appears to be invalid.", e.Source)
	case KindParse:
		return fmt.Sprintf("Error while reading %s data: %v", sourceLabel(e.Source), e.Err)
	case KindProcessing:
		return fmt.Sprintf("Error while processing data: %v", e.Err)
	case KindReport:
		return fmt.Sprintf("Error while reporting data: %v", e.Err)
	default:
		return fmt.Sprintf("diff failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindInvalidFormat:
		return target == ErrInvalidFormat
	case KindParse:
		return target == ErrParse
	case KindProcessing:
		return target == ErrProcessing
	case KindReport:
		return target == ErrReport
	}
	return false
}

func sourceLabel(source string) string {
	switch source {
	case SourceExtranet:
		return "extranet"
	case SourceOperoo:
		return "operoo"
	default:
		return "input"
	}
}

func invalidFormat(source string) error {
	return &Error{Kind: KindInvalidFormat, Source: source, Err: ErrInvalidFormat}
}

func parseError(source string, err error) error {
	return &Error{Kind: KindParse, Source: source, Err: err}
}

func processingError(err error) error {
	return &Error{Kind: KindProcessing, Err: err}
}

func reportError(err error) error {
	return &Error{Kind: KindReport, Err: err}
}
