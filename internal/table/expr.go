package table

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Expr computes a column from a table. Exprs are evaluated by Select.
type Expr struct {
	name string
	eval func(t *Table) (*Column, error)
}

// Col references an existing column by name.
func Col(name string) Expr {
	return Expr{
		name: name,
		eval: func(t *Table) (*Column, error) {
			return t.Column(name)
		},
	}
}

// Name returns the output column name of the expression.
func (e Expr) Name() string { return e.name }

// As renames the output column.
func (e Expr) As(alias string) Expr {
	inner := e.eval
	return Expr{
		name: alias,
		eval: func(t *Table) (*Column, error) {
			c, err := inner(t)
			if err != nil {
				return nil, err
			}
			return c.Renamed(alias), nil
		},
	}
}

// AsText casts the output column to text. Int cells already hold their
// decimal form, so only the type changes.
func (e Expr) AsText() Expr {
	inner := e.eval
	return Expr{
		name: e.name,
		eval: func(t *Table) (*Column, error) {
			c, err := inner(t)
			if err != nil {
				return nil, err
			}
			return &Column{Name: c.Name, Type: TypeText, Cells: c.Cells}, nil
		},
	}
}

// Map applies fn to every cell, producing a text column.
func (e Expr) Map(fn func(pgtype.Text) pgtype.Text) Expr {
	inner := e.eval
	return Expr{
		name: e.name,
		eval: func(t *Table) (*Column, error) {
			c, err := inner(t)
			if err != nil {
				return nil, err
			}
			cells := make([]pgtype.Text, c.Len())
			for i, v := range c.Cells {
				cells[i] = fn(v)
			}
			return NewTextColumn(c.Name, cells), nil
		},
	}
}

// Concat joins the string values of exprs with sep. The result is null when
// any input cell is null. The output is named after the first expression.
func Concat(sep string, exprs ...Expr) Expr {
	name := ""
	if len(exprs) > 0 {
		name = exprs[0].name
	}
	return Expr{
		name: name,
		eval: func(t *Table) (*Column, error) {
			inputs := make([]*Column, len(exprs))
			for i, e := range exprs {
				c, err := e.eval(t)
				if err != nil {
					return nil, err
				}
				inputs[i] = c
			}

			cells := make([]pgtype.Text, t.Len())
			parts := make([]string, len(inputs))
			for row := range cells {
				valid := true
				for i, c := range inputs {
					v := c.Cells[row]
					if !v.Valid {
						valid = false
						break
					}
					parts[i] = v.String
				}
				if valid {
					cells[row] = pgtype.Text{String: strings.Join(parts, sep), Valid: true}
				}
			}
			return NewTextColumn(name, cells), nil
		},
	}
}

// Select evaluates exprs against t and returns a table of the results, in
// the order given.
func (t *Table) Select(exprs ...Expr) (*Table, error) {
	cols := make([]*Column, len(exprs))
	for i, e := range exprs {
		c, err := e.eval(t)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return New(cols...)
}
