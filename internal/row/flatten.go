package row

import "fmt"

// Cell is a scalar leaf of a row addressed by its dotted path
type Cell struct {
	Path  string
	Value string
}

// Flatten walks the row depth-first and returns its scalar leaves in field order.
// Nested rows contribute "parent.child" paths; nested sequences collapse to a
// single cell holding the sequence length.
func (r Row) Flatten() []Cell {
	return r.flatten("", nil)
}

func (r Row) flatten(prefix string, cells []Cell) []Cell {
	for _, f := range r.fields {
		path := f.Key
		if prefix != "" {
			path = prefix + "." + f.Key
		}

		switch f.Value.kind {
		case KindRow:
			cells = f.Value.row.flatten(path, cells)
		case KindTable:
			cells = append(cells, Cell{Path: path, Value: fmt.Sprintf("<%d rows>", len(f.Value.table))})
		default:
			cells = append(cells, Cell{Path: path, Value: f.Value.str})
		}
	}
	return cells
}

// Columns returns the union of flattened paths across rows in first-seen order
func Columns(rows []Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, r := range rows {
		for _, c := range r.Flatten() {
			if seen[c.Path] {
				continue
			}
			seen[c.Path] = true
			columns = append(columns, c.Path)
		}
	}
	return columns
}

// Lookup returns the flattened cell value at path, or "" if the row has no such leaf
func (r Row) Lookup(path string) string {
	for _, c := range r.Flatten() {
		if c.Path == path {
			return c.Value
		}
	}
	return ""
}
