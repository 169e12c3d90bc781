package core

// convert.go provides cell conversion helpers shared by the source readers
// and the field normalizers.
//
// Readers never fail on a single bad value: empty or unparseable cells
// become invalid pgtype values, which the rest of the pipeline treats as null.

import (
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// CanonicalDateLayout is the layout both date normalizers emit.
const CanonicalDateLayout = "2006-01-02"

// Date layouts accepted per source.
var (
	extranetDateLayouts = []string{
		"2006-01-02",
		"2006-1-2",
	}
	operooDateLayouts = []string{
		"2 January 2006",
		"2 Jan 2006",
	}
)

// ToText converts a raw cell to pgtype.Text.
// Empty strings are null; other values are kept verbatim.
func ToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToDate parses s with the first matching layout.
// Returns an invalid date when no layout matches.
func ToDate(s string, layouts []string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	return pgtype.Date{Valid: false}
}

// FormatDate renders a parsed date in the canonical layout, or "" if the
// date is invalid.
func FormatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(CanonicalDateLayout)
}

// DedupeHeaders makes header names unique by suffixing repeats with
// "_duplicated_N", N counting from 0 per name.
func DedupeHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		n, dup := seen[h]
		if !dup {
			seen[h] = 0
			out[i] = h
			continue
		}
		out[i] = h + "_duplicated_" + strconv.Itoa(n)
		seen[h] = n + 1
	}
	return out
}
