package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

func sampleReport() *core.Report {
	r := core.NewReport()
	r.Add("Different Names", table.MustNew(
		table.NewIntColumn("RegID", []pgtype.Int8{{Int64: 1001, Valid: true}}),
		table.NewTextColumn("Extranet", []pgtype.Text{{String: "Jane Doe", Valid: true}}),
		table.NewTextColumn("Operoo", []pgtype.Text{{String: "Janet Doe", Valid: true}}),
	))
	r.Add("Missing from Operoo", table.MustNew(
		table.NewIntColumn("RegID", []pgtype.Int8{{Int64: 1002, Valid: true}, {}}),
		table.NewTextColumn("Name", []pgtype.Text{{String: "Sam Lee", Valid: true}, {String: "No Id", Valid: true}}),
	))
	return r
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Different Names (1)")
	assert.Contains(t, out, "Missing from Operoo (2)")
	assert.Less(t, strings.Index(out, "Different Names"), strings.Index(out, "Missing from Operoo"))
	assert.Contains(t, out, "RegID")
	assert.Contains(t, out, "Extranet")
	assert.Contains(t, out, "Janet Doe")
	assert.Contains(t, out, "No Id")
	assert.NotContains(t, out, "REGID", "headers keep their case")
}

func TestText_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, core.NewReport()))
	assert.Equal(t, NoDiscrepancies+"\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatJSON))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, int64(1002), gjson.Get(out, "Missing from Operoo.0.RegID").Int())
	assert.Equal(t, gjson.Null, gjson.Get(out, "Missing from Operoo.1.RegID").Type)
}

func TestJSON_EncodingFailureIsReportError(t *testing.T) {
	r := core.NewReport()
	r.Add("Different Names", table.MustNew(&table.Column{
		Name:  "RegID",
		Type:  table.TypeInt,
		Cells: []pgtype.Text{{String: "not-a-number", Valid: true}},
	}))

	var buf bytes.Buffer
	err := JSON(&buf, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrReport)
	assert.Equal(t, "RPT001", core.MapError(err).Code)
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.EqualError(t, err, `unknown format "yaml": expected text or json`)
}
