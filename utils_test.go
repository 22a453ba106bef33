package notion2bases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskLiterals(t *testing.T) {
	in := `contains(ref("a(b,c"), 'd)e')`
	masked := maskLiterals(in)
	require.Len(t, masked, len(in))
	assert.Equal(t, `contains(ref("     "), '   ')`, masked)
}

func TestMaskLiteralsEscapedQuote(t *testing.T) {
	in := `"a\"b"`
	assert.Equal(t, `"    "`, maskLiterals(in))
}

func TestFindCallsSkipsMethodSyntax(t *testing.T) {
	masked := maskLiterals(`(x).round() + round(y)`)
	sites := findCalls(masked)
	require.Len(t, sites, 1)
	assert.Equal(t, "round", sites[0].name)
	assert.Equal(t, byte('('), masked[sites[0].open])
}

func TestMatchParen(t *testing.T) {
	s := `f(g(1, ")"), 2)`
	masked := maskLiterals(s)
	assert.Equal(t, len(s)-1, matchParen(masked, 1))
	assert.Equal(t, -1, matchParen(maskLiterals("f(1"), 1))
}

func TestReplaceWholeToken(t *testing.T) {
	got := replaceWholeToken(`current + concurrent + "current"`, "current", "value")
	assert.Equal(t, `value + concurrent + "current"`, got)
}
