package manifest

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// encode writes t in TOML. Direct entries precede sub-tables; sub-tables
// and arrays of tables follow in the order their keys were first seen.
func encode(root *Table) []byte {
	var b bytes.Buffer
	writeTable(&b, root, nil)
	return b.Bytes()
}

func writeTable(b *bytes.Buffer, t *Table, path []string) {
	var sections []string
	for _, k := range t.keys {
		switch v := t.values[k].(type) {
		case *Table:
			if !v.inline {
				sections = append(sections, k)
				continue
			}
		case []*Table:
			sections = append(sections, k)
			continue
		}
		b.WriteString(formatKey(k))
		b.WriteString(" = ")
		writeValue(b, t.values[k], true)
		b.WriteByte('\n')
	}

	for _, k := range sections {
		childPath := append(slices.Clone(path), k)
		switch v := t.values[k].(type) {
		case *Table:
			if v.needsHeader() {
				writeHeader(b, "[%s]\n", childPath)
			}
			writeTable(b, v, childPath)
		case []*Table:
			for _, el := range v {
				writeHeader(b, "[[%s]]\n", childPath)
				writeTable(b, el, childPath)
			}
		}
	}
}

// needsHeader is false for implicit tables that only hold sub-tables.
func (t *Table) needsHeader() bool {
	if t.defined || len(t.keys) == 0 {
		return true
	}
	for _, k := range t.keys {
		switch v := t.values[k].(type) {
		case *Table:
			if v.inline {
				return true
			}
		case []*Table:
		default:
			return true
		}
	}
	return false
}

func writeHeader(b *bytes.Buffer, format string, path []string) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	keys := make([]string, len(path))
	for i, p := range path {
		keys[i] = formatKey(p)
	}
	fmt.Fprintf(b, format, strings.Join(keys, "."))
}

// writeValue renders v inline. Top-level arrays with more than one element
// are spread one item per line.
func writeValue(b *bytes.Buffer, v any, top bool) {
	switch v := v.(type) {
	case string:
		b.WriteString(quote(v))
	case Literal:
		b.WriteString(string(v))
	case []any:
		if top && len(v) > 1 {
			b.WriteString("[\n")
			for _, item := range v {
				b.WriteString("    ")
				writeValue(b, item, false)
				b.WriteString(",\n")
			}
			b.WriteByte(']')
			return
		}
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item, false)
		}
		b.WriteByte(']')
	case []*Table:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeInlineTable(b, item)
		}
		b.WriteByte(']')
	case *Table:
		writeInlineTable(b, v)
	}
}

func writeInlineTable(b *bytes.Buffer, t *Table) {
	if len(t.keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, k := range t.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatKey(k))
		b.WriteString(" = ")
		writeValue(b, t.values[k], false)
	}
	b.WriteString(" }")
}

func formatKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		if !isBareKeyRune(r) {
			return quote(k)
		}
	}
	return k
}

func isBareKeyRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-'
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
