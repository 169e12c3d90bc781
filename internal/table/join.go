package table

import "fmt"

// RightSuffix is appended to right-hand column names that collide with a
// left-hand column in an inner join.
const RightSuffix = "_right"

// keyColumn resolves a join key and checks that it is an int column.
func keyColumn(t *Table, name string) (*Column, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Type != TypeInt {
		return nil, fmt.Errorf("join key %q has type %s, expected int", name, c.Type)
	}
	return c, nil
}

// keyIndex maps each non-null key value to the rows holding it, in order.
func keyIndex(c *Column) map[int64][]int {
	idx := make(map[int64][]int, c.Len())
	for i := range c.Cells {
		if k := c.Int(i); k.Valid {
			idx[k.Int64] = append(idx[k.Int64], i)
		}
	}
	return idx
}

// InnerJoin returns every pairing of left and right rows whose keys are
// equal. Rows are ordered by left row, then right row. Null keys never
// match. The output holds all left columns followed by the right columns
// except rightKey.
func InnerJoin(left, right *Table, leftKey, rightKey string) (*Table, error) {
	lk, err := keyColumn(left, leftKey)
	if err != nil {
		return nil, err
	}
	rk, err := keyColumn(right, rightKey)
	if err != nil {
		return nil, err
	}

	idx := keyIndex(rk)

	var leftRows, rightRows []int
	for i := range lk.Cells {
		k := lk.Int(i)
		if !k.Valid {
			continue
		}
		for _, j := range idx[k.Int64] {
			leftRows = append(leftRows, i)
			rightRows = append(rightRows, j)
		}
	}

	cols := make([]*Column, 0, left.Width()+right.Width()-1)
	for _, c := range left.columns {
		cols = append(cols, c.take(leftRows))
	}
	for _, c := range right.columns {
		if c.Name == rightKey {
			continue
		}
		out := c.take(rightRows)
		if left.Has(out.Name) {
			out = out.Renamed(out.Name + RightSuffix)
		}
		cols = append(cols, out)
	}

	return New(cols...)
}

// AntiJoin returns the rows of left whose key has no match in right.
// Rows with a null key have no match and are kept.
func AntiJoin(left, right *Table, leftKey, rightKey string) (*Table, error) {
	lk, err := keyColumn(left, leftKey)
	if err != nil {
		return nil, err
	}
	rk, err := keyColumn(right, rightKey)
	if err != nil {
		return nil, err
	}

	idx := keyIndex(rk)

	rows := make([]int, 0, left.Len())
	for i := range lk.Cells {
		k := lk.Int(i)
		if k.Valid {
			if _, found := idx[k.Int64]; found {
				continue
			}
		}
		rows = append(rows, i)
	}

	return left.Take(rows), nil
}
