package core

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer transforms a comparison value before an equality test.
// Every normalizer maps null to null.
type Normalizer func(pgtype.Text) pgtype.Text

// PhoneSuffixLen is the number of trailing characters compared for phone
// numbers, which drops country code and trunk prefix variation.
const PhoneSuffixLen = 9

// lower applies Unicode full lowercasing. Casers are stateful, so a fresh
// one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// NormalizeName lowercases and collapses whitespace runs to single spaces,
// dropping leading and trailing whitespace.
func NormalizeName(v pgtype.Text) pgtype.Text {
	if !v.Valid {
		return v
	}
	return pgtype.Text{String: strings.Join(strings.Fields(lower(v.String)), " "), Valid: true}
}

// NormalizeEmail lowercases an email address.
func NormalizeEmail(v pgtype.Text) pgtype.Text {
	if !v.Valid {
		return v
	}
	return pgtype.Text{String: lower(v.String), Valid: true}
}

// NormalizePhone keeps the last PhoneSuffixLen characters.
// Shorter values are returned unchanged.
func NormalizePhone(v pgtype.Text) pgtype.Text {
	if !v.Valid {
		return v
	}
	r := []rune(v.String)
	if len(r) <= PhoneSuffixLen {
		return v
	}
	return pgtype.Text{String: string(r[len(r)-PhoneSuffixLen:]), Valid: true}
}

// NormalizeExtranetDate reformats a YYYY-MM-DD date into the canonical
// layout. Unparseable values become the empty-string sentinel, not null.
func NormalizeExtranetDate(v pgtype.Text) pgtype.Text {
	return normalizeDate(v, extranetDateLayouts)
}

// NormalizeOperooDate reformats a "7 March 2015" date into the canonical
// layout. Unparseable values become the empty-string sentinel, not null.
func NormalizeOperooDate(v pgtype.Text) pgtype.Text {
	return normalizeDate(v, operooDateLayouts)
}

func normalizeDate(v pgtype.Text, layouts []string) pgtype.Text {
	if !v.Valid {
		return v
	}
	return pgtype.Text{String: FormatDate(ToDate(v.String, layouts)), Valid: true}
}
