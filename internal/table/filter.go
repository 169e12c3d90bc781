package table

// Predicate computes a keep/drop mask for the rows of a table.
type Predicate func(t *Table) ([]bool, error)

// Filter returns the rows of t for which pred is true, preserving order.
func (t *Table) Filter(pred Predicate) (*Table, error) {
	mask, err := pred(t)
	if err != nil {
		return nil, err
	}

	rows := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			rows = append(rows, i)
		}
	}
	return t.Take(rows), nil
}

// IsIn keeps rows whose column value is one of values. Nulls never match.
func IsIn(name string, values ...string) Predicate {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return func(t *Table) ([]bool, error) {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		mask := make([]bool, c.Len())
		for i, v := range c.Cells {
			if v.Valid {
				_, mask[i] = set[v.String]
			}
		}
		return mask, nil
	}
}

// Differs keeps rows where a and b, both non-null, are unequal. A null on
// either side is unknown and therefore never kept, matching SQL semantics
// for NOT (a = b).
func Differs(a, b Expr) Predicate {
	return func(t *Table) ([]bool, error) {
		left, err := a.eval(t)
		if err != nil {
			return nil, err
		}
		right, err := b.eval(t)
		if err != nil {
			return nil, err
		}

		mask := make([]bool, t.Len())
		for i := range mask {
			l, r := left.Cells[i], right.Cells[i]
			mask[i] = l.Valid && r.Valid && l.String != r.String
		}
		return mask, nil
	}
}
