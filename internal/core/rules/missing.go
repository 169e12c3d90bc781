package rules

import (
	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/schema"
)

func init() {
	registerMissingFromOperoo()
	registerMissingFromExtranet()
}

func registerMissingFromOperoo() {
	core.Register(core.RuleDefinition{
		Name:  MissingFromOperoo,
		Order: orderMissingFromOperoo,
		Evaluate: core.Missing{
			Rows: core.Sources.MissingFromOperoo,
			ID:   schema.RegID,
			Name: schema.FullName,
		}.Evaluate,
	})
}

func registerMissingFromExtranet() {
	core.Register(core.RuleDefinition{
		Name:  MissingFromExtranet,
		Order: orderMissingFromExtranet,
		Evaluate: core.Missing{
			Rows: core.Sources.MissingFromExtranet,
			ID:   schema.ProfileID,
			Name: schema.PersonName,
		}.Evaluate,
	})
}
