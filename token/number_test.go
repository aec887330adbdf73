package token_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

func lexNumber(t *testing.T, text string) token.Number {
	t.Helper()
	file := source.NewFile("test.json5", text)
	s := lex.NewStream(file)
	r := token.LexNumber(s)
	require.True(t, r.IsLexed(), "expected %q to lex as a number", text)
	return r.Value()
}

func TestNumberMV(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"-3", -3},
		{"+4.5", 4.5},
		{".25", 0.25},
		{"1.5e2", 150},
		{"1e3", 1000},
		{"0x1A", 26},
		{"0X1a", 26},
	}
	for _, c := range cases {
		got := lexNumber(t, c.text).MV()
		require.InDelta(t, c.want, got, 1e-9, "MV of %q", c.text)
	}
}

func TestNumberKeywords(t *testing.T) {
	inf := lexNumber(t, "Infinity")
	require.True(t, math.IsInf(inf.MV(), 1))

	nan := lexNumber(t, "NaN")
	require.True(t, math.IsNaN(nan.MV()))

	neg := lexNumber(t, "-Infinity")
	require.True(t, math.IsInf(neg.MV(), -1))
}

func TestLeadingZeroRejected(t *testing.T) {
	file := source.NewFile("test.json5", "01")
	s := lex.NewStream(file)
	r := token.LexNumber(s)
	require.True(t, r.IsErrant(), "expected a leading zero followed by a digit to be rejected")
}

func TestInfinityIsNotAPrefixOfALongerIdentifier(t *testing.T) {
	file := source.NewFile("test.json5", "InfinityScale")
	s := lex.NewStream(file)
	require.False(t, token.PeekNumber(s), "Infinity must not match as a prefix of a longer identifier")
}

// A numeric literal directly followed by a \uXXXX escape is just as much
// an after-check violation as one followed by a bare identifier-start
// letter.
func TestNumberFollowedByUnicodeEscapeIsRejected(t *testing.T) {
	file := source.NewFile("test.json5", "1\\u0041")
	s := lex.NewStream(file)
	r := token.LexNumber(s)
	require.True(t, r.IsErrant(), "a number immediately followed by a \\uXXXX escape must be rejected")
}
