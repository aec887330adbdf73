package token_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

func lexIdentifier(t *testing.T, text string) token.Identifier {
	t.Helper()
	file := source.NewFile("test.json5", text)
	s := lex.NewStream(file)
	r := token.LexIdentifier(s)
	require.True(t, r.IsLexed(), "expected %q to lex as an identifier", text)
	return r.Value()
}

func TestIdentifierPlain(t *testing.T) {
	id := lexIdentifier(t, "fooBar2")
	require.Equal(t, utf16.Encode([]rune("fooBar2")), id.SV())
}

func TestIdentifierDollarAndUnderscore(t *testing.T) {
	id := lexIdentifier(t, "$_x")
	require.Equal(t, utf16.Encode([]rune("$_x")), id.SV())
}

// An escaped identifier start resolves to its decoded character in SV,
// regardless of its \uXXXX spelling.
func TestIdentifierEscapedStart(t *testing.T) {
	id := lexIdentifier(t, "\\u0061bc")
	require.Equal(t, utf16.Encode([]rune("abc")), id.SV())
}

// The escape with digits 0030 decodes to '0', which is not a legal IdentifierStart character.
func TestIdentifierIllegalEscapedStart(t *testing.T) {
	file := source.NewFile("test.json5", "\\u0030")
	s := lex.NewStream(file)
	r := token.LexIdentifier(s)
	require.True(t, r.IsErrant(), "an escape resolving to a digit must be rejected as an identifier start")
}

func TestIdentifierStopsBeforeNonIdentifierChar(t *testing.T) {
	file := source.NewFile("test.json5", "abc:1")
	s := lex.NewStream(file)
	r := token.LexIdentifier(s)
	require.True(t, r.IsLexed())
	require.Equal(t, "abc", r.Value().Span().Text())
	require.Equal(t, 3, s.Index())
}

func TestIdentifierNotStartedByDigit(t *testing.T) {
	file := source.NewFile("test.json5", "123")
	s := lex.NewStream(file)
	require.False(t, token.PeekIdentifier(s))
}
