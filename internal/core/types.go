package core

import (
	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// Column names of every discrepancy table.
const (
	ColumnRegID    = "RegID"
	ColumnName     = "Name"
	ColumnExtranet = "Extranet"
	ColumnOperoo   = "Operoo"
)

// Sources holds the parsed inputs of one diff. Rules derive their views
// from it and must not modify either table.
type Sources struct {
	Extranet *table.Table
	Operoo   *table.Table
}

// Joined returns the inner join of both sources on RegID = Profile Id.
func (s Sources) Joined() (*table.Table, error) {
	return table.InnerJoin(s.Extranet, s.Operoo, schema.RegID, schema.ProfileID)
}

// YouthJoined returns the inner join restricted to youth sections, the only
// members whose primary contact is recorded in both systems.
func (s Sources) YouthJoined() (*table.Table, error) {
	joined, err := s.Joined()
	if err != nil {
		return nil, err
	}
	return joined.Filter(table.IsIn(schema.ClassID, schema.YouthSections...))
}

// MissingFromOperoo returns Extranet rows with no Operoo match.
func (s Sources) MissingFromOperoo() (*table.Table, error) {
	return table.AntiJoin(s.Extranet, s.Operoo, schema.RegID, schema.ProfileID)
}

// MissingFromExtranet returns Operoo rows with no Extranet match.
func (s Sources) MissingFromExtranet() (*table.Table, error) {
	return table.AntiJoin(s.Operoo, s.Extranet, schema.ProfileID, schema.RegID)
}

// EvaluateFunc computes a rule's discrepancy table from the sources.
type EvaluateFunc func(src Sources) (*table.Table, error)

// RuleDefinition is a named discrepancy check.
type RuleDefinition struct {
	Name     string // Report table name: "Different Names"
	Order    int    // Evaluation order
	Evaluate EvaluateFunc
}

// Comparison is a field-level check over matched records. Rows whose
// normalized values differ are reported with columns RegID, Extranet and
// Operoo.
type Comparison struct {
	Rows     func(src Sources) (*table.Table, error)
	Extranet table.Expr
	Operoo   table.Expr

	NormalizeExtranet Normalizer
	NormalizeOperoo   Normalizer

	// ShowNormalized reports the normalized values instead of the originals.
	ShowNormalized bool
}

// Evaluate implements EvaluateFunc.
func (c Comparison) Evaluate(src Sources) (*table.Table, error) {
	rows, err := c.Rows(src)
	if err != nil {
		return nil, err
	}

	extranet, operoo := c.Extranet, c.Operoo
	if c.ShowNormalized {
		extranet = extranet.Map(c.NormalizeExtranet)
		operoo = operoo.Map(c.NormalizeOperoo)
	}

	view, err := rows.Select(
		table.Col(schema.RegID),
		extranet.As(ColumnExtranet),
		operoo.As(ColumnOperoo),
	)
	if err != nil {
		return nil, err
	}

	if c.ShowNormalized {
		return view.Filter(table.Differs(table.Col(ColumnExtranet), table.Col(ColumnOperoo)))
	}
	return view.Filter(table.Differs(
		table.Col(ColumnExtranet).Map(c.NormalizeExtranet),
		table.Col(ColumnOperoo).Map(c.NormalizeOperoo),
	))
}

// Missing reports the rows of an anti join with columns RegID and Name.
type Missing struct {
	Rows func(src Sources) (*table.Table, error)
	ID   string // Source identifier column
	Name string // Source display name column
}

// Evaluate implements EvaluateFunc.
func (m Missing) Evaluate(src Sources) (*table.Table, error) {
	rows, err := m.Rows(src)
	if err != nil {
		return nil, err
	}
	return rows.Select(
		table.Col(m.ID).As(ColumnRegID),
		table.Col(m.Name).As(ColumnName),
	)
}
