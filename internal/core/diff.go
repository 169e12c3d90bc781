package core

import (
	"encoding/json"
	"errors"

	"github.com/JonMunkholm/rosterdiff/internal/schema"
	"github.com/JonMunkholm/rosterdiff/internal/table"
)

// errNoRules is returned when Diff runs before any rule is registered.
var errNoRules = errors.New("no comparison rules registered")

// Diff reconciles an Extranet CSV export against an Operoo XML spreadsheet
// export and reports their discrepancies.
//
// Diff is pure: it holds no state between calls and the same inputs always
// yield the same report. Any failure aborts the whole run with an *Error.
func Diff(extranetCSV, operooXLS []byte) (*Report, error) {
	if err := CheckReportTypes(extranetCSV, operooXLS); err != nil {
		return nil, err
	}

	src, err := Load(extranetCSV, operooXLS)
	if err != nil {
		return nil, err
	}

	rules := All()
	if len(rules) == 0 {
		return nil, processingError(errNoRules)
	}

	report := NewReport()
	for _, rule := range rules {
		t, err := rule.Evaluate(src)
		if err != nil {
			return nil, processingError(err)
		}
		report.Add(rule.Name, t)
	}

	return report, nil
}

// DiffJSON runs Diff and serializes the report.
func DiffJSON(extranetCSV, operooXLS []byte) ([]byte, error) {
	report, err := Diff(extranetCSV, operooXLS)
	if err != nil {
		return nil, err
	}

	return EncodeReport(report)
}

// EncodeReport serializes a report, classifying failures as report errors.
func EncodeReport(report *Report) ([]byte, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return nil, reportError(err)
	}
	return b, nil
}

// Load parses both exports and casts their identifier columns for joining.
func Load(extranetCSV, operooXLS []byte) (Sources, error) {
	extranet, err := ReadExtranet(extranetCSV)
	if err != nil {
		return Sources{}, parseError(SourceExtranet, err)
	}

	operoo, err := ReadOperoo(operooXLS)
	if err != nil {
		return Sources{}, parseError(SourceOperoo, err)
	}

	operoo, err = castKeys(operoo, schema.OperooFieldSpecs)
	if err != nil {
		return Sources{}, processingError(err)
	}

	extranet, err = castEmptyKeys(extranet, schema.ExtranetFieldSpecs)
	if err != nil {
		return Sources{}, processingError(err)
	}

	return Sources{Extranet: extranet, Operoo: operoo}, nil
}

// castKeys converts every FieldInt column of specs to an int column.
func castKeys(t *table.Table, specs []schema.FieldSpec) (*table.Table, error) {
	for _, spec := range specs {
		if spec.Type != schema.FieldInt {
			continue
		}
		var err error
		if t, err = t.CastInt(spec.Name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// castEmptyKeys converts FieldInt columns of specs that hold no values to
// int columns. Inference leaves such columns as text, which would fail the
// join. Columns with values keep their inferred type.
func castEmptyKeys(t *table.Table, specs []schema.FieldSpec) (*table.Table, error) {
	for _, spec := range specs {
		if spec.Type != schema.FieldInt {
			continue
		}
		c, err := t.Column(spec.Name)
		if err != nil {
			return nil, err
		}
		if c.Type == table.TypeInt || !allNull(c) {
			continue
		}
		if t, err = t.CastInt(spec.Name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func allNull(c *table.Column) bool {
	for _, v := range c.Cells {
		if v.Valid {
			return false
		}
	}
	return true
}
