package core

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func text(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name  string
		fn    Normalizer
		input pgtype.Text
		want  pgtype.Text
	}{
		// Names
		{name: "name lowercased", fn: NormalizeName, input: text("Jane DOE"), want: text("jane doe")},
		{name: "name whitespace collapsed", fn: NormalizeName, input: text("  Jane \t  Doe "), want: text("jane doe")},
		{name: "name unicode", fn: NormalizeName, input: text("ZOË Ångström"), want: text("zoë ångström")},
		{name: "name null", fn: NormalizeName, input: pgtype.Text{}, want: pgtype.Text{}},

		// Emails
		{name: "email lowercased", fn: NormalizeEmail, input: text("John@Example.COM"), want: text("john@example.com")},
		{name: "email keeps spacing", fn: NormalizeEmail, input: text(" a@b.c"), want: text(" a@b.c")},

		// Phones
		{name: "phone international", fn: NormalizePhone, input: text("+61412345678"), want: text("412345678")},
		{name: "phone national", fn: NormalizePhone, input: text("0412345678"), want: text("412345678")},
		{name: "phone exactly nine", fn: NormalizePhone, input: text("412345678"), want: text("412345678")},
		{name: "phone short kept", fn: NormalizePhone, input: text("1234"), want: text("1234")},
		{name: "phone empty kept", fn: NormalizePhone, input: text(""), want: text("")},
		{name: "phone null", fn: NormalizePhone, input: pgtype.Text{}, want: pgtype.Text{}},

		// Dates
		{name: "extranet iso date", fn: NormalizeExtranetDate, input: text("2015-03-07"), want: text("2015-03-07")},
		{name: "extranet unpadded date", fn: NormalizeExtranetDate, input: text("2015-3-7"), want: text("2015-03-07")},
		{name: "extranet bad date sentinel", fn: NormalizeExtranetDate, input: text("07/03/2015"), want: text("")},
		{name: "extranet null date", fn: NormalizeExtranetDate, input: pgtype.Text{}, want: pgtype.Text{}},
		{name: "operoo long month", fn: NormalizeOperooDate, input: text("7 March 2015"), want: text("2015-03-07")},
		{name: "operoo short month", fn: NormalizeOperooDate, input: text("07 Mar 2015"), want: text("2015-03-07")},
		{name: "operoo padded", fn: NormalizeOperooDate, input: text(" 7 March 2015 "), want: text("2015-03-07")},
		{name: "operoo garbage sentinel", fn: NormalizeOperooDate, input: text("garbage"), want: text("")},
		{name: "operoo iso rejected", fn: NormalizeOperooDate, input: text("2015-03-07"), want: text("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.input)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{"Jane  Doe", "  MARY-ANNE   o'brien ", "ÉLODIE\tDurand", ""}

	for _, in := range inputs {
		once := NormalizeName(text(in))
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName(%q) not idempotent: %q then %q", in, once.String, twice.String)
		}
	}

	if NormalizeName(text("Jane  Doe")) != NormalizeName(text("jane doe")) {
		t.Error("name comparison should ignore case and spacing")
	}
}

func TestDateNormalizers_AgreeAcrossSources(t *testing.T) {
	if NormalizeExtranetDate(text("2015-03-07")) != NormalizeOperooDate(text("7 March 2015")) {
		t.Error("equivalent dates should normalize to the same value")
	}
	if NormalizeExtranetDate(text("bad")) != NormalizeOperooDate(text("worse")) {
		t.Error("two unparseable dates should share the sentinel")
	}
}

func TestToText(t *testing.T) {
	if got := ToText(""); got.Valid {
		t.Errorf("ToText(\"\") = %+v, want null", got)
	}
	if got := ToText(" x "); got != text(" x ") {
		t.Errorf("ToText should keep values verbatim, got %+v", got)
	}
}

func TestToDate(t *testing.T) {
	tests := []struct {
		input     string
		layouts   []string
		wantValid bool
		want      string
	}{
		{"2024-02-29", extranetDateLayouts, true, "2024-02-29"},
		{"2023-02-29", extranetDateLayouts, false, ""},
		{"", extranetDateLayouts, false, ""},
		{"29 February 2024", operooDateLayouts, true, "2024-02-29"},
		{"29 Feb 2024", operooDateLayouts, true, "2024-02-29"},
		{"February 29 2024", operooDateLayouts, false, ""},
	}

	for _, tt := range tests {
		got := ToDate(tt.input, tt.layouts)
		if got.Valid != tt.wantValid {
			t.Errorf("ToDate(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
		}
		if FormatDate(got) != tt.want {
			t.Errorf("FormatDate(ToDate(%q)) = %q, want %q", tt.input, FormatDate(got), tt.want)
		}
	}
}

func TestDedupeHeaders(t *testing.T) {
	got := DedupeHeaders([]string{"a", "b", "a", "a", "b", "c"})
	want := []string{"a", "b", "a_duplicated_0", "a_duplicated_1", "b_duplicated_0", "c"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, got[i], want[i])
		}
	}
}
