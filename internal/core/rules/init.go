// Package rules registers the roster discrepancy checks with the core
// registry. Import this package to ensure all rules are registered.
package rules

// Evaluation order of the registered rules.
const (
	orderMissingFromOperoo = iota + 1
	orderMissingFromExtranet
	orderNames
	orderContactNames
	orderContactEmails
	orderContactMobiles
	orderDateOfBirth
)

// Report table names.
const (
	MissingFromOperoo      = "Missing from Operoo"
	MissingFromExtranet    = "Missing from Extranet"
	DifferentNames         = "Different Names"
	DifferentContactNames  = "Different Primary Contact Names"
	DifferentContactEmails = "Different Primary Contact Emails"
	DifferentContactMobile = "Different Primary Contact Mobile Numbers"
	DifferentDateOfBirth   = "Different Date of Birth"
)

// Names lists every report table name in evaluation order.
var Names = []string{
	MissingFromOperoo,
	MissingFromExtranet,
	DifferentNames,
	DifferentContactNames,
	DifferentContactEmails,
	DifferentContactMobile,
	DifferentDateOfBirth,
}
