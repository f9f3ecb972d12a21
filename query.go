package annometa

// Contains reports whether any outer attribute carries an annotation nested
// exactly along path. Matching is strictly hierarchical: path [a, b, c]
// matches only a marker or list reached as a(b(c)); partial prefixes and
// reordered paths never match, and an empty path matches nothing. A
// name/value pair never satisfies an exists check; use Value for those.
func Contains(attrs []Attribute, path ...string) bool {
	for _, attr := range attrs {
		if attr.Style != Outer || attr.Meta == nil {
			continue
		}
		if containsMeta(attr.Meta, path) {
			return true
		}
	}
	return false
}

func containsMeta(m Meta, path []string) bool {
	if len(path) == 0 {
		return false
	}
	switch m := m.(type) {
	case Word:
		return len(path) == 1 && m.Ident == path[0]
	case List:
		if m.Ident != path[0] {
			return false
		}
		for _, item := range m.Items {
			nested, ok := item.(Meta)
			if ok && containsMeta(nested, path[1:]) {
				return true
			}
		}
	}
	return false
}

// Value returns the literal of the first name/value annotation reached
// exactly along path, in declaration order. The pair must sit at the final
// path element; lists along the way must match the preceding elements. The
// second result is false when no annotation matches.
func Value(attrs []Attribute, path ...string) (Lit, bool) {
	for _, attr := range attrs {
		if attr.Style != Outer || attr.Meta == nil {
			continue
		}
		if lit, ok := valueMeta(attr.Meta, path); ok {
			return lit, true
		}
	}
	return Lit{}, false
}

func valueMeta(m Meta, path []string) (Lit, bool) {
	if len(path) == 0 {
		return Lit{}, false
	}
	switch m := m.(type) {
	case NameValue:
		if len(path) == 1 && m.Ident == path[0] {
			return m.Lit, true
		}
	case List:
		if m.Ident != path[0] {
			return Lit{}, false
		}
		for _, item := range m.Items {
			nested, ok := item.(Meta)
			if !ok {
				continue
			}
			if lit, ok := valueMeta(nested, path[1:]); ok {
				return lit, true
			}
		}
	}
	return Lit{}, false
}

// ValueAs looks up a literal along path and coerces it to T. Absence and
// kind mismatch both yield false; callers that need to distinguish the two
// should use Value and Cast directly.
func ValueAs[T Castable](attrs []Attribute, path ...string) (T, bool) {
	var zero T
	lit, ok := Value(attrs, path...)
	if !ok {
		return zero, false
	}
	v, err := Cast[T](lit)
	if err != nil {
		return zero, false
	}
	return v, true
}
