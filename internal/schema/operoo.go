package schema

// Operoo column headers used by the diff.
const (
	ProfileID               = "Profile Id"
	PersonName              = "Person Name"
	ProfileOwnerName        = "Profile Owner's Name " // trailing space is part of the export header
	ProfileOwnerEmail       = "Profile Owner's Email"
	ProfileOwnerMobilePhone = "Profile Owner's Mobile Phone"
	PersonBirthDate         = "Person Birth Date"
)

// OperooSignature is the prefix every Operoo export starts with: two stray
// spaces written by the exporter, then the XML declaration.
const OperooSignature = "  <?xml"

// OperooJunkPrefixLen is the number of leading bytes stripped before the
// Operoo document is parsed as XML.
const OperooJunkPrefixLen = 2

// SpreadsheetNamespace is the XML namespace of Microsoft's 2003 XML
// spreadsheet format used by the Operoo export.
const SpreadsheetNamespace = "urn:schemas-microsoft-com:office:spreadsheet"

// OperooFieldSpecs is the whitelist of Operoo columns retained by the reader.
// Retained columns keep the order of their headers in the document.
var OperooFieldSpecs = []FieldSpec{
	{Name: ProfileID, Type: FieldInt},
	{Name: PersonName, Type: FieldText},
	{Name: ProfileOwnerName, Type: FieldText},
	{Name: ProfileOwnerEmail, Type: FieldText},
	{Name: ProfileOwnerMobilePhone, Type: FieldText},
	{Name: PersonBirthDate, Type: FieldText},
}
