package annometa

import (
	"fmt"
	"strconv"
)

// LitKind identifies the type of a literal annotation value.
type LitKind int

const (
	LitInvalid LitKind = iota
	LitString
	LitInt
	LitFloat
	LitBool
)

func (k LitKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Lit is a literal annotation value. Only the field matching Kind is
// meaningful; the zero Lit has kind LitInvalid and casts to nothing.
type Lit struct {
	Kind  LitKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringLit returns a string literal.
func StringLit(s string) Lit { return Lit{Kind: LitString, Str: s} }

// IntLit returns an integer literal.
func IntLit(i int64) Lit { return Lit{Kind: LitInt, Int: i} }

// FloatLit returns a floating-point literal.
func FloatLit(f float64) Lit { return Lit{Kind: LitFloat, Float: f} }

// BoolLit returns a boolean literal.
func BoolLit(b bool) Lit { return Lit{Kind: LitBool, Bool: b} }

// Value returns the literal as a plain Go value (string, int64, float64 or
// bool), suitable for encoding. An invalid literal yields nil.
func (l Lit) Value() any {
	switch l.Kind {
	case LitString:
		return l.Str
	case LitInt:
		return l.Int
	case LitFloat:
		return l.Float
	case LitBool:
		return l.Bool
	default:
		return nil
	}
}

// String renders the literal the way it appears in annotation source.
func (l Lit) String() string {
	switch l.Kind {
	case LitString:
		return strconv.Quote(l.Str)
	case LitInt:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	default:
		return "<invalid>"
	}
}

// CastError reports a failed literal coercion.
type CastError struct {
	Want string
	Got  LitKind
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast %s literal to %s", e.Got, e.Want)
}

// Castable constrains the Go types a Lit can be coerced to. Lit itself is
// allowed as an identity cast.
type Castable interface {
	Lit | string | int64 | uint64 | float64 | bool
}

// Cast coerces a literal to the requested Go type. There is no cross-kind
// coercion: an int literal does not cast to float64 and vice versa. Casting
// a negative int literal to uint64 fails.
func Cast[T Castable](lit Lit) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *Lit:
		*p = lit
	case *string:
		if lit.Kind != LitString {
			return out, &CastError{Want: "string", Got: lit.Kind}
		}
		*p = lit.Str
	case *int64:
		if lit.Kind != LitInt {
			return out, &CastError{Want: "int64", Got: lit.Kind}
		}
		*p = lit.Int
	case *uint64:
		if lit.Kind != LitInt || lit.Int < 0 {
			return out, &CastError{Want: "uint64", Got: lit.Kind}
		}
		*p = uint64(lit.Int)
	case *float64:
		if lit.Kind != LitFloat {
			return out, &CastError{Want: "float64", Got: lit.Kind}
		}
		*p = lit.Float
	case *bool:
		if lit.Kind != LitBool {
			return out, &CastError{Want: "bool", Got: lit.Kind}
		}
		*p = lit.Bool
	}
	return out, nil
}
