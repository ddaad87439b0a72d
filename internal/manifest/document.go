// Package manifest reads, edits and writes the pyproject.toml project
// descriptor while keeping the document's key order and unrelated fields.
package manifest

import "slices"

// Literal is a non-string TOML scalar (integer, float, boolean or
// date-time) kept exactly as it was written in the source.
type Literal string

// Table is an ordered TOML table. Values are string, Literal, []any,
// *Table (sub-table or inline table) or []*Table (array of tables).
type Table struct {
	keys    []string
	values  map[string]any
	defined bool // declared by its own [header]
	inline  bool
}

func newTable() *Table {
	return &Table{values: make(map[string]any)}
}

// Keys returns the table's keys in document order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Table returns the sub-table stored under key, if any.
func (t *Table) Table(key string) (*Table, bool) {
	v, ok := t.values[key]
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Table)
	return sub, ok
}

// Len reports the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

func (t *Table) set(key string, v any) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Document is a parsed manifest. A document that has not been mutated
// serializes back to the exact bytes it was parsed from.
type Document struct {
	root  *Table
	raw   []byte
	dirty bool
}

// Root returns the top-level table.
func (d *Document) Root() *Table {
	return d.root
}

// Lookup walks a dotted path of keys from the root.
func (d *Document) Lookup(path ...string) (any, bool) {
	var cur any = d.root
	for _, key := range path {
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		if cur, ok = t.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Name returns project.name.
func (d *Document) Name() string {
	s, _ := d.lookupString("project", "name")
	return s
}

// RequiresPython returns project.requires-python.
func (d *Document) RequiresPython() string {
	s, _ := d.lookupString("project", "requires-python")
	return s
}

// Dependencies returns a copy of the runtime list, or of the dev list
// (project.optional-dependencies.dev) when dev is set.
func (d *Document) Dependencies(dev bool) []string {
	path := []string{"project", "dependencies"}
	if dev {
		path = []string{"project", "optional-dependencies", "dev"}
	}
	v, _ := d.Lookup(path...)
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Modified reports whether any edit has been applied since parsing.
func (d *Document) Modified() bool {
	return d.dirty
}

// Bytes serializes the document.
func (d *Document) Bytes() []byte {
	if !d.dirty && d.raw != nil {
		return slices.Clone(d.raw)
	}
	return encode(d.root)
}

func (d *Document) lookupString(path ...string) (string, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
