package annometa

import "fmt"

// ConflictError reports a flattened key that appears in two incompatible
// shapes, e.g. once as a bare marker and again as a valued entry.
type ConflictError struct {
	Key string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting annotations for key %q", e.Key)
}

// Flatten collects every outer annotation into a map from dotted key to
// literal values, joining nested names with sep. A bare marker contributes
// an entry with no values; a name/value pair appends its literal, so
// repeated valued keys accumulate. The same key may not appear both as a
// marker and as a valued entry, and a marker key may not be declared twice;
// either conflict aborts the walk with a *ConflictError.
func Flatten(attrs []Attribute, sep string) (map[string][]Lit, error) {
	out := make(map[string][]Lit)
	for _, attr := range attrs {
		if attr.Style != Outer || attr.Meta == nil {
			continue
		}
		if err := flattenMeta(out, attr.Meta, "", sep); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MustFlatten is Flatten but panics on conflicting shapes. Intended for
// macro authors who treat a conflict as a programming error in the
// annotated source.
func MustFlatten(attrs []Attribute, sep string) map[string][]Lit {
	out, err := Flatten(attrs, sep)
	if err != nil {
		panic(err)
	}
	return out
}

func flattenMeta(out map[string][]Lit, m Meta, prefix, sep string) error {
	key := m.Name()
	if prefix != "" {
		key = prefix + sep + key
	}
	switch m := m.(type) {
	case Word:
		if _, exists := out[key]; exists {
			return &ConflictError{Key: key}
		}
		out[key] = []Lit{}
	case NameValue:
		existing, exists := out[key]
		if exists && len(existing) == 0 {
			return &ConflictError{Key: key}
		}
		out[key] = append(existing, m.Lit)
	case List:
		for _, item := range m.Items {
			nested, ok := item.(Meta)
			if !ok {
				continue
			}
			if err := flattenMeta(out, nested, key, sep); err != nil {
				return err
			}
		}
	}
	return nil
}
