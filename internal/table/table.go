// Package table provides a small in-memory row-set model used by the diff
// pipeline: named, typed columns of nullable cells plus the relational
// operations the comparison rules need (projection, filtering and joins).
//
// Every operation returns a new Table; inputs are never mutated.
package table

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// Type is the logical type of a column.
type Type int

const (
	TypeText Type = iota
	TypeInt
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	default:
		return "text"
	}
}

// intRegex matches the integer literals accepted by CastInt and by CSV
// type inference. A leading '+' is deliberately not accepted.
var intRegex = regexp.MustCompile(`^-?\d+$`)

// Column is a named sequence of nullable cells.
// Int columns hold the canonical decimal form of each value.
type Column struct {
	Name  string
	Type  Type
	Cells []pgtype.Text
}

// NewTextColumn builds a text column from raw cells.
func NewTextColumn(name string, cells []pgtype.Text) *Column {
	return &Column{Name: name, Type: TypeText, Cells: cells}
}

// NewIntColumn builds an int column from parsed values.
func NewIntColumn(name string, values []pgtype.Int8) *Column {
	cells := make([]pgtype.Text, len(values))
	for i, v := range values {
		if v.Valid {
			cells[i] = pgtype.Text{String: strconv.FormatInt(v.Int64, 10), Valid: true}
		}
	}
	return &Column{Name: name, Type: TypeInt, Cells: cells}
}

// Len returns the number of cells in the column.
func (c *Column) Len() int { return len(c.Cells) }

// Int returns cell i as an integer. Text cells that are not integer literals
// are reported as null.
func (c *Column) Int(i int) pgtype.Int8 {
	return ParseInt(c.Cells[i])
}

// ParseInt converts a text cell to pgtype.Int8, returning an invalid value for
// nulls and non-integer text.
func ParseInt(v pgtype.Text) pgtype.Int8 {
	if !v.Valid || !intRegex.MatchString(v.String) {
		return pgtype.Int8{}
	}
	n, err := strconv.ParseInt(v.String, 10, 64)
	if err != nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: n, Valid: true}
}

// IsInt reports whether s is an integer literal that fits in an int64.
func IsInt(s string) bool {
	return ParseInt(pgtype.Text{String: s, Valid: true}).Valid
}

// Renamed returns a copy of the column header under a new name.
// Cells are shared; columns are treated as immutable once built.
func (c *Column) Renamed(name string) *Column {
	return &Column{Name: name, Type: c.Type, Cells: c.Cells}
}

// take returns a new column holding the cells at the given rows, in order.
// A negative row index yields a null cell.
func (c *Column) take(rows []int) *Column {
	cells := make([]pgtype.Text, len(rows))
	for i, r := range rows {
		if r >= 0 {
			cells[i] = c.Cells[r]
		}
	}
	return &Column{Name: c.Name, Type: c.Type, Cells: cells}
}

// Table is an ordered set of equal-length named columns.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New assembles columns into a table.
// Returns an error if column lengths differ or a name is repeated.
func New(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name: %q", c.Name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, c.Len(), t.rows)
		}
		t.index[c.Name] = len(t.columns)
		t.columns = append(t.columns, c)
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(columns ...*Column) *Table {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in order. The slice must not be modified.
func (t *Table) Columns() []*Column { return t.columns }

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Name: name}
	}
	return t.columns[i], nil
}

// Cell returns the value of the named column at row i.
func (t *Table) Cell(i int, name string) (pgtype.Text, error) {
	c, err := t.Column(name)
	if err != nil {
		return pgtype.Text{}, err
	}
	return c.Cells[i], nil
}

// Take returns a table holding the given rows, in the given order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{
		columns: make([]*Column, len(t.columns)),
		index:   t.index,
		rows:    len(rows),
	}
	for i, c := range t.columns {
		out.columns[i] = c.take(rows)
	}
	return out
}

// WithColumn returns a table with c appended, or replacing the column of the
// same name in place.
func (t *Table) WithColumn(c *Column) (*Table, error) {
	cols := make([]*Column, len(t.columns))
	copy(cols, t.columns)

	if i, ok := t.index[c.Name]; ok {
		cols[i] = c
	} else {
		cols = append(cols, c)
	}
	return New(cols...)
}

// CastInt returns a table where the named column is converted to TypeInt.
// Values that are not integer literals become null.
func (t *Table) CastInt(name string) (*Table, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Type == TypeInt {
		return t, nil
	}

	values := make([]pgtype.Int8, c.Len())
	for i := range c.Cells {
		values[i] = c.Int(i)
	}
	return t.WithColumn(NewIntColumn(name, values))
}

// ColumnNotFoundError is returned when an operation references a column the
// table does not have.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %q", e.Name)
}
