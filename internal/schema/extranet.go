package schema

// Extranet column headers used by the diff.
const (
	RegID                   = "RegID"
	FullName                = "FullName"
	ClassID                 = "ClassID"
	PrimaryContactFirstname = "Primary Contact Firstname"
	PrimaryContactSurname   = "Primary Contact Surname"
	PrimaryContactEmail     = "Primary Contact Email"
	PrimaryContactMobile    = "Primary Contact Mobile"
	DOB                     = "DOB"
)

// ExtranetSignature is the prefix every Extranet CSV export starts with.
const ExtranetSignature = "RegionID,"

// ExtranetFieldSpecs defines the Extranet CSV columns consumed by the diff.
var ExtranetFieldSpecs = []FieldSpec{
	{Name: RegID, Type: FieldInt},
	{Name: FullName, Type: FieldText},
	{Name: ClassID, Type: FieldText},
	{Name: PrimaryContactFirstname, Type: FieldText},
	{Name: PrimaryContactSurname, Type: FieldText},
	{Name: PrimaryContactEmail, Type: FieldText},
	{Name: PrimaryContactMobile, Type: FieldText},
	{Name: DOB, Type: FieldText},
}

// YouthSections are the ClassID values whose members have a primary
// contact (parent or guardian) recorded in both systems.
var YouthSections = []string{"JOEY", "CUB", "SCOUT", "VENT"}
