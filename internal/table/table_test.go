package table

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(values ...any) []pgtype.Text {
	cells := make([]pgtype.Text, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			cells[i] = pgtype.Text{String: s, Valid: true}
		}
	}
	return cells
}

func ints(values ...any) []pgtype.Int8 {
	out := make([]pgtype.Int8, len(values))
	for i, v := range values {
		if n, ok := v.(int); ok {
			out[i] = pgtype.Int8{Int64: int64(n), Valid: true}
		}
	}
	return out
}

func TestNew_RejectsUnequalColumns(t *testing.T) {
	_, err := New(
		NewTextColumn("a", text("1", "2")),
		NewTextColumn("b", text("1")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "b" has 1 rows, expected 2`)
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(
		NewTextColumn("a", text("1")),
		NewTextColumn("a", text("2")),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")
}

func TestTable_ColumnNotFound(t *testing.T) {
	tbl := MustNew(NewTextColumn("a", text("1")))

	_, err := tbl.Column("missing")
	var notFound *ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in    pgtype.Text
		want  int64
		valid bool
	}{
		{pgtype.Text{String: "1001", Valid: true}, 1001, true},
		{pgtype.Text{String: "-7", Valid: true}, -7, true},
		{pgtype.Text{String: "0412345678", Valid: true}, 412345678, true},
		{pgtype.Text{String: "+61412345678", Valid: true}, 0, false},
		{pgtype.Text{String: "12.5", Valid: true}, 0, false},
		{pgtype.Text{String: "99999999999999999999", Valid: true}, 0, false},
		{pgtype.Text{}, 0, false},
	}

	for _, tt := range tests {
		got := ParseInt(tt.in)
		assert.Equal(t, tt.valid, got.Valid, "input %q", tt.in.String)
		if tt.valid {
			assert.Equal(t, tt.want, got.Int64, "input %q", tt.in.String)
		}
	}
}

func TestTable_CastInt(t *testing.T) {
	tbl := MustNew(NewTextColumn("id", text("10", "x", nil, "007")))

	cast, err := tbl.CastInt("id")
	require.NoError(t, err)

	c, err := cast.Column("id")
	require.NoError(t, err)
	assert.Equal(t, TypeInt, c.Type)
	assert.Equal(t, text("10", nil, nil, "7"), c.Cells)

	// Source is untouched.
	orig, _ := tbl.Column("id")
	assert.Equal(t, TypeText, orig.Type)
}

func TestSelect_ConcatAndMap(t *testing.T) {
	tbl := MustNew(
		NewTextColumn("first", text("Jane", "John", nil)),
		NewTextColumn("last", text("Doe", nil, "Smith")),
	)

	out, err := tbl.Select(
		Concat(" ", Col("first"), Col("last")).As("full"),
		Col("first").Map(func(v pgtype.Text) pgtype.Text {
			if v.Valid {
				v.String += "!"
			}
			return v
		}).As("shout"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"full", "shout"}, out.Names())
	full, _ := out.Column("full")
	assert.Equal(t, text("Jane Doe", nil, nil), full.Cells)
	shout, _ := out.Column("shout")
	assert.Equal(t, text("Jane!", "John!", nil), shout.Cells)
}

func TestSelect_MissingColumn(t *testing.T) {
	tbl := MustNew(NewTextColumn("a", text("1")))

	_, err := tbl.Select(Col("a"), Col("b").As("x"))
	require.Error(t, err)
	assert.Equal(t, `column not found: "b"`, err.Error())
}

func TestFilter_IsIn(t *testing.T) {
	tbl := MustNew(NewTextColumn("class", text("JOEY", "ADULT", nil, "CUB")))

	out, err := tbl.Filter(IsIn("class", "JOEY", "CUB"))
	require.NoError(t, err)

	c, _ := out.Column("class")
	assert.Equal(t, text("JOEY", "CUB"), c.Cells)
}

func TestFilter_DiffersIgnoresNulls(t *testing.T) {
	tbl := MustNew(
		NewTextColumn("a", text("x", "x", nil, "y", nil)),
		NewTextColumn("b", text("x", "z", "z", nil, nil)),
	)

	out, err := tbl.Filter(Differs(Col("a"), Col("b")))
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	b, _ := out.Cell(0, "b")
	assert.Equal(t, "z", b.String)
}

func TestMarshalJSON(t *testing.T) {
	tbl := MustNew(
		NewIntColumn("RegID", ints(1001, nil)),
		NewTextColumn("Name", text("Jane \"JD\" Doe", nil)),
	)

	b, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, `[{"RegID":1001,"Name":"Jane \"JD\" Doe"},{"RegID":null,"Name":null}]`, string(b))
}

func TestMarshalJSON_Empty(t *testing.T) {
	tbl := MustNew(NewIntColumn("RegID", nil))

	b, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestRecords(t *testing.T) {
	tbl := MustNew(
		NewIntColumn("RegID", ints(5)),
		NewTextColumn("Name", text(nil)),
	)

	recs := tbl.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, int64(5), recs[0]["RegID"])
	assert.Nil(t, recs[0]["Name"])
}
