package manifest

import (
	"fmt"
	"slices"
	"strings"
)

// MatchMode selects how RemoveDependency finds its target.
type MatchMode int

const (
	// MatchLoose matches the first specifier containing the name as a substring.
	MatchLoose MatchMode = iota
	// MatchExact matches the first specifier whose normalized distribution
	// name equals the normalized target.
	MatchExact
)

// Matches reports whether spec is selected by name under mode.
func (m MatchMode) Matches(spec, name string) bool {
	if m == MatchExact {
		return NormalizeName(SpecName(spec)) == NormalizeName(SpecName(name))
	}
	return strings.Contains(spec, name)
}

// AddDependencies appends names, in order, to the runtime list or to the dev
// list. Duplicates are kept. The list and its enclosing table are created
// when missing.
func AddDependencies(doc *Document, names []string, dev bool) {
	if len(names) == 0 {
		return
	}
	t, key := doc.dependencyTable(dev, true)
	items, _ := t.values[key].([]any)
	items = slices.Clone(items)
	for _, n := range names {
		items = append(items, n)
	}
	t.set(key, items)
	doc.dirty = true
}

// RemoveDependency deletes the first entry of the target list matched by
// name. It returns ErrPackageNotFound, leaving the document unchanged, when
// nothing matches.
func RemoveDependency(doc *Document, name string, dev bool, mode MatchMode) error {
	t, key := doc.dependencyTable(dev, false)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}
	items, _ := t.values[key].([]any)
	for i, item := range items {
		spec, ok := item.(string)
		if !ok || !mode.Matches(spec, name) {
			continue
		}
		t.set(key, slices.Delete(slices.Clone(items), i, i+1))
		doc.dirty = true
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPackageNotFound, name)
}

// dependencyTable returns the table holding the target list and the list's
// key. With create unset it returns a nil table when the list is absent.
func (d *Document) dependencyTable(dev, create bool) (*Table, string) {
	project, ok := d.root.Table("project")
	if !ok {
		if !create {
			return nil, ""
		}
		project = newTable()
		project.defined = true
		d.root.set("project", project)
	}
	if !dev {
		if _, ok := project.Get("dependencies"); !ok && !create {
			return nil, ""
		}
		return project, "dependencies"
	}

	optional, ok := project.Table("optional-dependencies")
	if !ok {
		if !create {
			return nil, ""
		}
		optional = newTable()
		optional.defined = true
		project.set("optional-dependencies", optional)
	}
	if _, ok := optional.Get("dev"); !ok && !create {
		return nil, ""
	}
	return optional, "dev"
}
