// Package core reconciles an Extranet roster export against an Operoo
// profiles export.
//
// The package is independent of any transport. The web server, the CLI and
// tests all call it the same way:
//
//	import _ "github.com/JonMunkholm/rosterdiff/internal/core/rules"
//
//	report, err := core.Diff(extranetCSV, operooXLS)
//
// # Pipeline
//
//  1. [CheckReportTypes] checks each buffer's signature.
//  2. [ReadExtranet] parses the CSV, inferring int and text columns.
//  3. [ReadOperoo] extracts the whitelisted columns of the XML spreadsheet.
//  4. Key columns are cast for joining.
//  5. Every registered rule is evaluated and non-empty results are added to
//     the [Report].
//
// Any failure aborts the run with an [*Error] whose message is meant for the
// end user. Value-level problems never fail a run: unparseable cells become
// null and unparseable dates the empty sentinel.
//
// # Rule Registry
//
// Rules are registered at init time using [Register], usually from the rules
// subpackage. Most rules are a [Comparison] over the matched records:
//
//	core.Register(core.RuleDefinition{
//	    Name:  "Different Names",
//	    Order: 3,
//	    Evaluate: core.Comparison{
//	        Rows:              core.Sources.Joined,
//	        Extranet:          table.Col(schema.FullName),
//	        Operoo:            table.Col(schema.PersonName),
//	        NormalizeExtranet: core.NormalizeName,
//	        NormalizeOperoo:   core.NormalizeName,
//	    }.Evaluate,
//	})
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
package core
