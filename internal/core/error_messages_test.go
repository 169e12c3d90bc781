package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error returns empty", err: nil, wantCode: ""},
		{name: "invalid extranet", err: invalidFormat(SourceExtranet), wantCode: "FMT001"},
		{name: "invalid operoo", err: invalidFormat(SourceOperoo), wantCode: "FMT002"},
		{name: "extranet read failure", err: parseError(SourceExtranet, errors.New("invalid csv")), wantCode: "PRS001"},
		{name: "operoo read failure", err: parseError(SourceOperoo, errors.New("bad xml")), wantCode: "PRS002"},
		{name: "processing failure", err: processingError(errors.New(`column not found: "DOB"`)), wantCode: "PRC001"},
		{name: "report failure", err: reportError(errors.New("boom")), wantCode: "RPT001"},
		{name: "wrapped diff error", err: fmt.Errorf("diff abc: %w", processingError(errNoRules)), wantCode: "PRC001"},
		{name: "file too large", err: errors.New("http: request body too large"), wantCode: "FILE001"},
		{name: "no file", err: errors.New(`no file provided for "operoo"`), wantCode: "FILE004"},
		{name: "limiter busy", err: ErrTooManyDiffs, wantCode: "DIF001"},
		{name: "rate limit", err: errors.New("rate limit exceeded"), wantCode: "RATE001"},
		{name: "api key", err: errors.New("invalid API key"), wantCode: "AUTH001"},
		{name: "unknown error returns default", err: errors.New("some random internal error"), wantCode: "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(ErrTooManyDiffs)

	expected := "System is busy comparing other exports (Code: DIF001). Please wait a moment and try again"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error is not user facing", err: nil, want: false},
		{name: "diff error is user facing", err: invalidFormat(SourceOperoo), want: true},
		{name: "unknown error is not user facing", err: errors.New("random internal error xyz"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{invalidFormat(SourceExtranet), "The provided Extranet report appears to be invalid."},
		{invalidFormat(SourceOperoo), "The provided Operoo report appears to be invalid."},
		{parseError(SourceExtranet, errors.New("x")), "Error while reading extranet data: x"},
		{parseError(SourceOperoo, errors.New("y")), "Error while reading operoo data: y"},
		{processingError(errors.New("z")), "Error while processing data: z"},
		{reportError(errors.New("w")), "Error while reporting data: w"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", parseError(SourceOperoo, errors.New("bad")))

	if !errors.Is(err, ErrParse) {
		t.Error("expected errors.Is(err, ErrParse)")
	}
	if errors.Is(err, ErrProcessing) {
		t.Error("parse error must not match ErrProcessing")
	}
}
