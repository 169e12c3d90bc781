package rules

import (
	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// Primary contacts are only compared for youth sections.
func init() {
	registerDifferentContactNames()
	registerDifferentContactEmails()
	registerDifferentContactMobiles()
}

func registerDifferentContactNames() {
	core.Register(core.RuleDefinition{
		Name:  DifferentContactNames,
		Order: orderContactNames,
		Evaluate: core.Comparison{
			Rows: core.Sources.YouthJoined,
			Extranet: table.Concat(" ",
				table.Col(schema.PrimaryContactFirstname),
				table.Col(schema.PrimaryContactSurname),
			),
			Operoo:            table.Col(schema.ProfileOwnerName),
			NormalizeExtranet: core.NormalizeName,
			NormalizeOperoo:   core.NormalizeName,
		}.Evaluate,
	})
}

func registerDifferentContactEmails() {
	core.Register(core.RuleDefinition{
		Name:  DifferentContactEmails,
		Order: orderContactEmails,
		Evaluate: core.Comparison{
			Rows:              core.Sources.YouthJoined,
			Extranet:          table.Col(schema.PrimaryContactEmail),
			Operoo:            table.Col(schema.ProfileOwnerEmail),
			NormalizeExtranet: core.NormalizeEmail,
			NormalizeOperoo:   core.NormalizeEmail,
		}.Evaluate,
	})
}

// Mobile numbers may be inferred as integers on the Extranet side.
func registerDifferentContactMobiles() {
	core.Register(core.RuleDefinition{
		Name:  DifferentContactMobile,
		Order: orderContactMobiles,
		Evaluate: core.Comparison{
			Rows:              core.Sources.YouthJoined,
			Extranet:          table.Col(schema.PrimaryContactMobile).AsText(),
			Operoo:            table.Col(schema.ProfileOwnerMobilePhone).AsText(),
			NormalizeExtranet: core.NormalizePhone,
			NormalizeOperoo:   core.NormalizePhone,
		}.Evaluate,
	})
}
