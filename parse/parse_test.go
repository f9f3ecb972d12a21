package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boncheolgu/annometa"
	"github.com/boncheolgu/annometa/parse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want annometa.Attribute
	}{
		{
			name: "bare marker",
			src:  `@deprecated`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.Word{Ident: "deprecated"}},
		},
		{
			name: "inner marker",
			src:  `@!generated`,
			want: annometa.Attribute{Style: annometa.Inner, Meta: annometa.Word{Ident: "generated"}},
		},
		{
			name: "string value",
			src:  `@doc = "hi there"`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "doc", Lit: annometa.StringLit("hi there"),
			}},
		},
		{
			name: "escaped string value",
			src:  `@doc = "a \"quoted\" word"`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "doc", Lit: annometa.StringLit(`a "quoted" word`),
			}},
		},
		{
			name: "int value",
			src:  `@index = 3`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "index", Lit: annometa.IntLit(3),
			}},
		},
		{
			name: "negative int value",
			src:  `@offset = -42`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "offset", Lit: annometa.IntLit(-42),
			}},
		},
		{
			name: "hex int value",
			src:  `@mask = 0xff`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "mask", Lit: annometa.IntLit(255),
			}},
		},
		{
			name: "float value",
			src:  `@rate = 2.5`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "rate", Lit: annometa.FloatLit(2.5),
			}},
		},
		{
			name: "bool value",
			src:  `@strict = true`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.NameValue{
				Ident: "strict", Lit: annometa.BoolLit(true),
			}},
		},
		{
			name: "empty list",
			src:  `@serde()`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.List{
				Ident: "serde", Items: []annometa.NestedMeta{},
			}},
		},
		{
			name: "nested list",
			src:  `@serde(rename = "user", skip, limits(burst = 16))`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.List{
				Ident: "serde",
				Items: []annometa.NestedMeta{
					annometa.NameValue{Ident: "rename", Lit: annometa.StringLit("user")},
					annometa.Word{Ident: "skip"},
					annometa.List{Ident: "limits", Items: []annometa.NestedMeta{
						annometa.NameValue{Ident: "burst", Lit: annometa.IntLit(16)},
					}},
				},
			}},
		},
		{
			name: "bare literals inside a list",
			src:  `@tags("a", 1, true)`,
			want: annometa.Attribute{Style: annometa.Outer, Meta: annometa.List{
				Ident: "tags",
				Items: []annometa.NestedMeta{
					annometa.StringLit("a"),
					annometa.IntLit(1),
					annometa.BoolLit(true),
				},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse.Parse(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`@`,
		`serde`,
		`@serde(`,
		`@serde(skip`,
		`@serde(skip,)`,
		`@doc = ident`,
		`@doc =`,
		`@1abc`,
	} {
		t.Run(src, func(t *testing.T) {
			_, err := parse.Parse(src)
			assert.Error(t, err, "input %q should not parse", src)
		})
	}
}

func TestParseMeta(t *testing.T) {
	meta, err := parse.ParseMeta(`serde(rename = "user")`)
	require.NoError(t, err)
	assert.Equal(t, annometa.List{
		Ident: "serde",
		Items: []annometa.NestedMeta{
			annometa.NameValue{Ident: "rename", Lit: annometa.StringLit("user")},
		},
	}, meta)

	_, err = parse.ParseMeta(`@serde`)
	assert.Error(t, err, "ParseMeta does not accept the @ prefix")
}
