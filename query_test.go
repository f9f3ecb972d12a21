package annometa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boncheolgu/annometa"
	"github.com/boncheolgu/annometa/parse"
)

// attr parses a single directive, failing the test on malformed input.
func attr(t *testing.T, src string) annometa.Attribute {
	t.Helper()
	a, err := parse.Parse(src)
	require.NoError(t, err, "parse %q", src)
	return a
}

func TestContains(t *testing.T) {
	attrs := []annometa.Attribute{attr(t, `@level0`)}
	assert.True(t, annometa.Contains(attrs, "level0"))

	attrs = []annometa.Attribute{
		attr(t, `@level0(level1, level1_1(level2, level2_1 = "hello", level2_2), level1_2)`),
	}

	assert.False(t, annometa.Contains(attrs), "empty path matches nothing")
	assert.False(t, annometa.Contains(attrs, "not"))
	assert.False(t, annometa.Contains(attrs, "level0"), "a list is not a marker")

	assert.True(t, annometa.Contains(attrs, "level0", "level1"))
	assert.False(t, annometa.Contains(attrs, "level0", "level1_1"))
	assert.True(t, annometa.Contains(attrs, "level0", "level1_2"))

	assert.True(t, annometa.Contains(attrs, "level0", "level1_1", "level2"))
	assert.True(t, annometa.Contains(attrs, "level0", "level1_1", "level2_2"))
	assert.False(t, annometa.Contains(attrs, "level0", "level1_1", "level2_1"),
		"a name/value pair never satisfies an exists check")
}

func TestContainsSkipsInnerAttributes(t *testing.T) {
	attrs := []annometa.Attribute{attr(t, `@!level0`)}
	assert.False(t, annometa.Contains(attrs, "level0"))
}

func TestValue(t *testing.T) {
	attrs := []annometa.Attribute{attr(t, `@level0 = "hi"`)}
	lit, ok := annometa.Value(attrs, "level0")
	require.True(t, ok)
	assert.Equal(t, annometa.StringLit("hi"), lit)

	attrs = []annometa.Attribute{attr(t, `@level0(level1 = "hi", level1_1(level2 = "bye"))`)}

	_, ok = annometa.Value(attrs)
	assert.False(t, ok, "empty path matches nothing")
	_, ok = annometa.Value(attrs, "not")
	assert.False(t, ok)
	_, ok = annometa.Value(attrs, "level0")
	assert.False(t, ok, "a list carries no value of its own")

	lit, ok = annometa.Value(attrs, "level0", "level1")
	require.True(t, ok)
	assert.Equal(t, annometa.StringLit("hi"), lit)

	_, ok = annometa.Value(attrs, "level0", "level1_1")
	assert.False(t, ok)

	lit, ok = annometa.Value(attrs, "level0", "level1_1", "level2")
	require.True(t, ok)
	assert.Equal(t, annometa.StringLit("bye"), lit)

	_, ok = annometa.Value(attrs, "level0", "level1", "extra")
	assert.False(t, ok, "path elements past a name/value pair never match")
}

func TestValueFirstMatchWins(t *testing.T) {
	attrs := []annometa.Attribute{
		attr(t, `@serde(rename = "first")`),
		attr(t, `@serde(rename = "second")`),
	}
	lit, ok := annometa.Value(attrs, "serde", "rename")
	require.True(t, ok)
	assert.Equal(t, "first", lit.Str)
}

func TestValueAs(t *testing.T) {
	attrs := []annometa.Attribute{
		attr(t, `@limits(burst = 16, rate = 2.5, strict = true, name = "edge")`),
	}

	burst, ok := annometa.ValueAs[uint64](attrs, "limits", "burst")
	require.True(t, ok)
	assert.Equal(t, uint64(16), burst)

	rate, ok := annometa.ValueAs[float64](attrs, "limits", "rate")
	require.True(t, ok)
	assert.Equal(t, 2.5, rate)

	strict, ok := annometa.ValueAs[bool](attrs, "limits", "strict")
	require.True(t, ok)
	assert.True(t, strict)

	name, ok := annometa.ValueAs[string](attrs, "limits", "name")
	require.True(t, ok)
	assert.Equal(t, "edge", name)

	// Kind mismatch yields no value, same as absence.
	_, ok = annometa.ValueAs[string](attrs, "limits", "burst")
	assert.False(t, ok)
	_, ok = annometa.ValueAs[float64](attrs, "limits", "burst")
	assert.False(t, ok, "ints do not coerce to floats")
	_, ok = annometa.ValueAs[uint64](attrs, "limits", "missing")
	assert.False(t, ok)
}
