package core_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/JonMunkholm/rosterdiff/internal/schema"
)

// member is one person as recorded by both exports. Empty fields are
// written as empty cells.
type member struct {
	RegID        string
	FullName     string
	ClassID      string
	ContactFirst string
	ContactLast  string
	ContactEmail string
	ContactPhone string
	DOB          string
}

// profile is one Operoo profile row.
type profile struct {
	ProfileID  string
	PersonName string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
	BirthDate  string
}

var extranetHeader = []string{
	"RegionID", schema.RegID, schema.FullName, schema.ClassID,
	schema.PrimaryContactFirstname, schema.PrimaryContactSurname,
	schema.PrimaryContactEmail, schema.PrimaryContactMobile, schema.DOB,
}

var operooHeader = []string{
	schema.ProfileID, "Group", schema.PersonName, schema.ProfileOwnerName,
	schema.ProfileOwnerEmail, schema.ProfileOwnerMobilePhone, schema.PersonBirthDate,
}

func extranetCSV(members ...member) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(extranetHeader, ",") + "\n")
	for _, m := range members {
		fields := []string{
			"7", m.RegID, m.FullName, m.ClassID, m.ContactFirst,
			m.ContactLast, m.ContactEmail, m.ContactPhone, m.DOB,
		}
		b.WriteString(strings.Join(fields, ",") + "\n")
	}
	return []byte(b.String())
}

func operooXLS(profiles ...profile) []byte {
	rows := make([][]string, len(profiles))
	for i, p := range profiles {
		rows[i] = []string{p.ProfileID, "Scouts", p.PersonName, p.OwnerName, p.OwnerEmail, p.OwnerPhone, p.BirthDate}
	}
	return spreadsheet(operooHeader, rows...)
}

// spreadsheet renders an Operoo-style XML spreadsheet with the exporter's
// two leading spaces.
func spreadsheet(header []string, rows ...[]string) []byte {
	var b bytes.Buffer
	b.WriteString(schema.OperooSignature + ` version="1.0"?>` + "\n")
	b.WriteString(`<?mso-application progid="Excel.Sheet"?>` + "\n")
	b.WriteString(`<Workbook xmlns="` + schema.SpreadsheetNamespace + `" xmlns:ss="` + schema.SpreadsheetNamespace + `">`)
	b.WriteString(`<Worksheet ss:Name="Profiles"><Table>`)
	writeRow(&b, header)
	for _, r := range rows {
		writeRow(&b, r)
	}
	b.WriteString(`</Table></Worksheet></Workbook>`)
	return b.Bytes()
}

func writeRow(b *bytes.Buffer, cells []string) {
	b.WriteString("<Row>")
	for _, c := range cells {
		b.WriteString(`<Cell><Data ss:Type="String">`)
		_ = xml.EscapeText(b, []byte(c))
		b.WriteString("</Data></Cell>")
	}
	b.WriteString("</Row>")
}

// matching returns the Operoo profile that agrees with m on every field.
func matching(m member) profile {
	return profile{
		ProfileID:  m.RegID,
		PersonName: m.FullName,
		OwnerName:  m.ContactFirst + " " + m.ContactLast,
		OwnerEmail: m.ContactEmail,
		OwnerPhone: m.ContactPhone,
		BirthDate:  operooDate(m.DOB),
	}
}

// operooDate rewrites an ISO date the way Operoo prints it.
func operooDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("2 January 2006")
}
