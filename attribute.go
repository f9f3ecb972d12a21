// Package annometa queries nested, path-structured annotation metadata
// attached to source declarations. Annotations form a small tree: a bare
// marker (`@serde`), a name/value pair (`@doc = "hi"`), or a named list of
// nested annotations (`@serde(rename = "foo", skip)`). The package provides
// an exists check, a single-value lookup, and a flattened key/value
// collection over such trees, plus a typed coercion layer for literals.
//
// Trees are usually produced by the parse subpackage (from directive text)
// or the scan subpackage (from Go source files), but can also be built
// directly from the exported types.
package annometa

// Style distinguishes where an attribute is attached.
type Style int

const (
	// Outer attributes annotate the declaration they are written on.
	Outer Style = iota
	// Inner attributes annotate the enclosing scope (a whole file or
	// package). Queries ignore them.
	Inner
)

// Attribute is a single parsed annotation together with its attachment
// style. The query API operates on slices of attributes in declaration
// order.
type Attribute struct {
	Style Style
	Meta  Meta
}

// NestedMeta is anything that may appear inside a List: a nested Meta or a
// bare literal.
type NestedMeta interface {
	isNested()
}

// Meta is one node of an annotation tree.
type Meta interface {
	NestedMeta

	// Name returns the identifier at this node.
	Name() string
}

// Word is a bare marker annotation, e.g. `skip` in `@serde(skip)`.
type Word struct {
	Ident string
}

// NameValue is a `name = literal` annotation, e.g. `rename = "foo"`.
type NameValue struct {
	Ident string
	Lit   Lit
}

// List is a named group of nested annotations, e.g. `serde(...)`.
type List struct {
	Ident string
	Items []NestedMeta
}

func (w Word) Name() string       { return w.Ident }
func (nv NameValue) Name() string { return nv.Ident }
func (l List) Name() string       { return l.Ident }

func (Word) isNested()      {}
func (NameValue) isNested() {}
func (List) isNested()      {}
func (Lit) isNested()       {}
