package manifest

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// pyproject is the typed shape the dependency editor relies on. Decoding
// into it validates the document before the ordered tree is built.
type pyproject struct {
	Project *struct {
		Name                 string              `toml:"name"`
		RequiresPython       string              `toml:"requires-python"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// Parse decodes manifest text into an ordered Document.
func Parse(data []byte) (*Document, error) {
	var shape pyproject
	if err := toml.Unmarshal(data, &shape); err != nil {
		return nil, &ParseError{Err: err}
	}
	if shape.Project == nil {
		return nil, &ParseError{Err: ErrNoProject}
	}

	root, err := buildTree(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Document{root: root, raw: data}, nil
}

// buildTree replays the document's expressions in order. Semantic checks
// (duplicate keys, table redefinition) were already done by toml.Unmarshal.
func buildTree(data []byte) (*Table, error) {
	root := newTable()
	current := root

	var p unstable.Parser
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.KeyValue:
			if err := setKeyValue(current, expr); err != nil {
				return nil, err
			}

		case unstable.Table:
			t, err := descend(root, keyParts(expr.Key()))
			if err != nil {
				return nil, err
			}
			t.defined = true
			current = t

		case unstable.ArrayTable:
			parts := keyParts(expr.Key())
			parent, err := descend(root, parts[:len(parts)-1])
			if err != nil {
				return nil, err
			}
			last := parts[len(parts)-1]
			var arr []*Table
			if v, ok := parent.Get(last); ok {
				if arr, ok = v.([]*Table); !ok {
					return nil, fmt.Errorf("key %q is not an array of tables", last)
				}
			}
			t := newTable()
			t.defined = true
			parent.set(last, append(arr, t))
			current = t
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return root, nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// descend walks (and creates, implicitly) the tables named by parts. An
// array of tables resolves to its last element.
func descend(t *Table, parts []string) (*Table, error) {
	for _, part := range parts {
		v, ok := t.Get(part)
		if !ok {
			sub := newTable()
			sub.inline = t.inline
			t.set(part, sub)
			t = sub
			continue
		}
		switch sub := v.(type) {
		case *Table:
			t = sub
		case []*Table:
			t = sub[len(sub)-1]
		default:
			return nil, fmt.Errorf("key %q is not a table", part)
		}
	}
	return t, nil
}

func setKeyValue(t *Table, expr *unstable.Node) error {
	parts := keyParts(expr.Key())
	parent, err := descend(t, parts[:len(parts)-1])
	if err != nil {
		return err
	}
	v, err := valueOf(expr.Value())
	if err != nil {
		return err
	}
	parent.set(parts[len(parts)-1], v)
	return nil
}

func valueOf(n *unstable.Node) (any, error) {
	switch n.Kind {
	case unstable.String:
		return string(n.Data), nil
	case unstable.Integer, unstable.Float, unstable.Bool,
		unstable.DateTime, unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime:
		return Literal(n.Data), nil
	case unstable.Array:
		items := []any{}
		it := n.Children()
		for it.Next() {
			v, err := valueOf(it.Node())
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case unstable.InlineTable:
		t := newTable()
		t.inline = true
		it := n.Children()
		for it.Next() {
			if err := setKeyValue(t, it.Node()); err != nil {
				return nil, err
			}
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported value kind %v", n.Kind)
	}
}
