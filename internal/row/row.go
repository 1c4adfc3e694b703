// Package row provides an ordered, possibly nested key-value record used as the
// unit of tabular output.
//
// A Row is built once and never mutated afterwards. Each field value is a string,
// a nested Row, or an ordered sequence of Rows. Key order is insertion order and
// is preserved by every encoder in this package.
package row

import "fmt"

// Kind identifies which variant a Value holds
type Kind int

const (
	// KindString is a scalar string value
	KindString Kind = iota
	// KindRow is a nested record
	KindRow
	// KindTable is an ordered sequence of records
	KindTable
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindRow:
		return "row"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a field value: a string, a nested Row, or a sequence of Rows
type Value struct {
	kind  Kind
	str   string
	row   Row
	table []Row
}

// String creates a scalar value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Nested creates a value holding a nested row
func Nested(r Row) Value {
	return Value{kind: KindRow, row: r}
}

// Table creates a value holding a sequence of rows
func Table(rows ...Row) Value {
	copied := make([]Row, len(rows))
	copy(copied, rows)
	return Value{kind: KindTable, table: copied}
}

// Kind reports which variant the value holds
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the scalar string, or "" for non-scalar values
func (v Value) Str() string {
	return v.str
}

// Row returns the nested row and whether the value holds one
func (v Value) Row() (Row, bool) {
	return v.row, v.kind == KindRow
}

// Rows returns a copy of the row sequence and whether the value holds one
func (v Value) Rows() ([]Row, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	copied := make([]Row, len(v.table))
	copy(copied, v.table)
	return copied, true
}

// Equal reports whether two values have the same kind and content
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindRow:
		return v.row.Equal(o.row)
	case KindTable:
		if len(v.table) != len(o.table) {
			return false
		}
		for i := range v.table {
			if !v.table[i].Equal(o.table[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Field is a single key-value pair of a Row
type Field struct {
	Key   string
	Value Value
}

// Str is shorthand for a scalar field
func Str(key, value string) Field {
	return Field{Key: key, Value: String(value)}
}

// Sub is shorthand for a nested-row field
func Sub(key string, r Row) Field {
	return Field{Key: key, Value: Nested(r)}
}

// Seq is shorthand for a row-sequence field
func Seq(key string, rows []Row) Field {
	return Field{Key: key, Value: Table(rows...)}
}

// Row is an ordered mapping of field name to value
type Row struct {
	fields []Field
}

// New builds a row from fields in order. A repeated key replaces the earlier
// value in its original position.
func New(fields ...Field) Row {
	r := Row{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		if i := r.index(f.Key); i >= 0 {
			r.fields[i].Value = f.Value
			continue
		}
		r.fields = append(r.fields, f)
	}
	return r
}

func (r Row) index(key string) int {
	for i, f := range r.fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Len returns the number of fields
func (r Row) Len() int {
	return len(r.fields)
}

// Keys returns field names in order
func (r Row) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in order
func (r Row) Fields() []Field {
	copied := make([]Field, len(r.fields))
	copy(copied, r.fields)
	return copied
}

// Get returns the value stored under key
func (r Row) Get(key string) (Value, bool) {
	if i := r.index(key); i >= 0 {
		return r.fields[i].Value, true
	}
	return Value{}, false
}

// GetString returns the scalar stored under key, or "" if absent or not a scalar
func (r Row) GetString(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	return v.Str()
}

// Equal reports whether both rows hold the same keys in the same order with equal values
func (r Row) Equal(o Row) bool {
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i := range r.fields {
		if r.fields[i].Key != o.fields[i].Key {
			return false
		}
		if !r.fields[i].Value.Equal(o.fields[i].Value) {
			return false
		}
	}
	return true
}
