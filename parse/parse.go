// Package parse turns annotation directive text into annometa trees.
//
// The accepted syntax is
//
//	@name
//	@name = <lit>
//	@name(<item>, <item>, ...)
//
// where items are nested annotations or bare literals, and literals are
// double-quoted strings, integers, floats, or the words true/false. A
// directive written as `@!name...` produces an Inner attribute.
package parse

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/boncheolgu/annometa"
)

var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Float", Pattern: `[-+]?(\d+\.\d*([eE][-+]?\d+)?|\d+[eE][-+]?\d+)`},
	{Name: "Int", Pattern: `[-+]?(0[xX][0-9a-fA-F]+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[@!=(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type astAnnotation struct {
	Inner bool     `parser:"'@' @'!'?"`
	Meta  *astMeta `parser:"@@"`
}

type astMeta struct {
	Name   string     `parser:"@Ident"`
	Value  *astLit    `parser:"( '=' @@"`
	Parens bool       `parser:"| @'('"`
	Items  []*astItem `parser:"  ( @@ ( ',' @@ )* )? ')' )?"`
}

type astItem struct {
	Meta *astMeta `parser:"  @@"`
	Lit  *astLit  `parser:"| @@"`
}

type astLit struct {
	Str   *string `parser:"  @String"`
	Float *string `parser:"| @Float"`
	Int   *string `parser:"| @Int"`
	Bool  *string `parser:"| @('true' | 'false')"`
}

var (
	annotationParser = participle.MustBuild[astAnnotation](
		participle.Lexer(annotationLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
	metaParser = participle.MustBuild[astMeta](
		participle.Lexer(annotationLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// Parse parses a single directive, including its leading `@`.
func Parse(src string) (annometa.Attribute, error) {
	ast, err := annotationParser.ParseString("", src)
	if err != nil {
		return annometa.Attribute{}, err
	}
	meta, err := ast.Meta.convert()
	if err != nil {
		return annometa.Attribute{}, err
	}
	style := annometa.Outer
	if ast.Inner {
		style = annometa.Inner
	}
	return annometa.Attribute{Style: style, Meta: meta}, nil
}

// ParseMeta parses an annotation tree without the leading `@`.
func ParseMeta(src string) (annometa.Meta, error) {
	ast, err := metaParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return ast.convert()
}

func (m *astMeta) convert() (annometa.Meta, error) {
	switch {
	case m.Value != nil:
		lit, err := m.Value.convert()
		if err != nil {
			return nil, err
		}
		return annometa.NameValue{Ident: m.Name, Lit: lit}, nil
	case m.Parens:
		items := make([]annometa.NestedMeta, 0, len(m.Items))
		for _, item := range m.Items {
			nested, err := item.convert()
			if err != nil {
				return nil, err
			}
			items = append(items, nested)
		}
		return annometa.List{Ident: m.Name, Items: items}, nil
	default:
		return annometa.Word{Ident: m.Name}, nil
	}
}

func (it *astItem) convert() (annometa.NestedMeta, error) {
	if it.Lit != nil {
		return it.Lit.convert()
	}
	// A bare true/false inside a list is a literal, not a marker.
	if it.Meta.Value == nil && !it.Meta.Parens {
		switch it.Meta.Name {
		case "true":
			return annometa.BoolLit(true), nil
		case "false":
			return annometa.BoolLit(false), nil
		}
	}
	return it.Meta.convert()
}

func (l *astLit) convert() (annometa.Lit, error) {
	switch {
	case l.Str != nil:
		return annometa.StringLit(*l.Str), nil
	case l.Float != nil:
		f, err := strconv.ParseFloat(*l.Float, 64)
		if err != nil {
			return annometa.Lit{}, fmt.Errorf("parse float literal %q: %w", *l.Float, err)
		}
		return annometa.FloatLit(f), nil
	case l.Int != nil:
		i, err := strconv.ParseInt(*l.Int, 0, 64)
		if err != nil {
			return annometa.Lit{}, fmt.Errorf("parse integer literal %q: %w", *l.Int, err)
		}
		return annometa.IntLit(i), nil
	case l.Bool != nil:
		return annometa.BoolLit(*l.Bool == "true"), nil
	default:
		return annometa.Lit{}, fmt.Errorf("empty literal")
	}
}
