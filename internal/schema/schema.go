// Package schema describes the columns each roster export must provide.
package schema

// FieldType is the expected type of a source column after parsing.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
)

// FieldSpec describes one column consumed by the diff.
type FieldSpec struct {
	Name string    // Column header (must match the export exactly, including whitespace)
	Type FieldType // Type the column must have before joining
}

// Names returns the header names of specs, in declaration order.
func Names(specs []FieldSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
