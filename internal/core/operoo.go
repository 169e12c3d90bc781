package core

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// XPath queries over the spreadsheet grid. Cells are addressed by position,
// so a row that omits a cell shifts every later cell in that row.
const (
	headerCellsXPath = "doc:Workbook/doc:Worksheet/doc:Table/doc:Row[1]/doc:Cell"
	columnDataXPath  = "doc:Workbook/doc:Worksheet/doc:Table/doc:Row[position()>1]/doc:Cell[%d]/doc:Data"
)

var spreadsheetNamespaces = map[string]string{"doc": schema.SpreadsheetNamespace}

// ReadOperoo parses an Operoo XML spreadsheet export into a table holding
// only the whitelisted columns of schema.OperooFieldSpecs, all as text.
//
// The first retained column fixes the row count; shorter columns are padded
// with nulls and longer ones truncated, since the exporter sometimes omits
// trailing empty cells.
func ReadOperoo(data []byte) (*table.Table, error) {
	if len(data) < schema.OperooJunkPrefixLen {
		return nil, errors.New("empty file")
	}
	body := data[schema.OperooJunkPrefixLen:]
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("encoding error: invalid utf-8 sequence at byte %d", invalidUTF8Offset(body))
	}

	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	headerCells, err := queryNodes(doc, headerCellsXPath, "Expected row to be nodeset")
	if err != nil {
		return nil, err
	}

	wanted := schema.Names(schema.OperooFieldSpecs)
	rowCount := -1
	var cols []*table.Column

	for i, cell := range headerCells {
		name := cellData(cell)
		if !name.Valid || !slices.Contains(wanted, name.String) {
			continue
		}

		dataNodes, err := queryNodes(doc, fmt.Sprintf(columnDataXPath, i+1), "Expected column to be nodeset")
		if err != nil {
			return nil, err
		}

		cells := make([]pgtype.Text, len(dataNodes))
		for j, n := range dataNodes {
			cells[j] = firstText(n)
		}

		if rowCount < 0 {
			rowCount = len(cells)
		} else {
			cells = resize(cells, rowCount)
		}
		cols = append(cols, table.NewTextColumn(name.String, cells))
	}

	return table.New(cols...)
}

// queryNodes evaluates a namespaced XPath expression from the document root.
// shapeErr is returned when the result is not a node-set.
func queryNodes(doc *xmlquery.Node, expr, shapeErr string) ([]*xmlquery.Node, error) {
	compiled, err := xpath.CompileWithNS(expr, spreadsheetNamespaces)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	iter, ok := compiled.Evaluate(xmlquery.CreateXPathNavigator(doc)).(*xpath.NodeIterator)
	if !ok {
		return nil, errors.New(shapeErr)
	}

	var nodes []*xmlquery.Node
	for iter.MoveNext() {
		nav, ok := iter.Current().(*xmlquery.NodeNavigator)
		if !ok {
			return nil, errors.New(shapeErr)
		}
		nodes = append(nodes, nav.Current())
	}
	return nodes, nil
}

// cellData returns the text of a Cell's Data child, or null.
func cellData(cell *xmlquery.Node) pgtype.Text {
	for n := cell.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.Data == "Data" && n.NamespaceURI == schema.SpreadsheetNamespace {
			return firstText(n)
		}
	}
	return pgtype.Text{}
}

// firstText returns the first child of n if it is a text node, or null.
func firstText(n *xmlquery.Node) pgtype.Text {
	c := n.FirstChild
	if c == nil || (c.Type != xmlquery.TextNode && c.Type != xmlquery.CharDataNode) {
		return pgtype.Text{}
	}
	return pgtype.Text{String: c.Data, Valid: true}
}

// resize pads cells with nulls or truncates them to n.
func resize(cells []pgtype.Text, n int) []pgtype.Text {
	if len(cells) >= n {
		return cells[:n]
	}
	return append(cells, make([]pgtype.Text, n-len(cells))...)
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
