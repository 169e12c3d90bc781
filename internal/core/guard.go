package core

import (
	"bytes"

	"github.com/JonMunkholm/rosterdiff/internal/schema"
)

// CheckReportTypes confirms each buffer starts with its export's signature.
// It is a cheap sanity check; deeper problems surface from the readers.
func CheckReportTypes(extranetCSV, operooXLS []byte) error {
	if !bytes.HasPrefix(extranetCSV, []byte(schema.ExtranetSignature)) {
		return invalidFormat(SourceExtranet)
	}
	if !bytes.HasPrefix(operooXLS, []byte(schema.OperooSignature)) {
		return invalidFormat(SourceOperoo)
	}
	return nil
}
