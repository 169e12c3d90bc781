package rules

import (
	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

func init() {
	registerDifferentNames()
	registerDifferentDateOfBirth()
}

func registerDifferentNames() {
	core.Register(core.RuleDefinition{
		Name:  DifferentNames,
		Order: orderNames,
		Evaluate: core.Comparison{
			Rows:              core.Sources.Joined,
			Extranet:          table.Col(schema.FullName),
			Operoo:            table.Col(schema.PersonName),
			NormalizeExtranet: core.NormalizeName,
			NormalizeOperoo:   core.NormalizeName,
		}.Evaluate,
	})
}

// Dates are reported in canonical form since the two exports format them
// differently.
func registerDifferentDateOfBirth() {
	core.Register(core.RuleDefinition{
		Name:  DifferentDateOfBirth,
		Order: orderDateOfBirth,
		Evaluate: core.Comparison{
			Rows:              core.Sources.Joined,
			Extranet:          table.Col(schema.DOB),
			Operoo:            table.Col(schema.PersonBirthDate),
			NormalizeExtranet: core.NormalizeExtranetDate,
			NormalizeOperoo:   core.NormalizeOperooDate,
			ShowNormalized:    true,
		}.Evaluate,
	})
}
