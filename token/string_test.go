package token_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

func lexLString(t *testing.T, text string) token.LString {
	t.Helper()
	file := source.NewFile("test.json5", text)
	s := lex.NewStream(file)
	r := token.LexLString(s)
	require.True(t, r.IsLexed(), "expected %q to lex as a string", text)
	return r.Value()
}

func TestLStringPlain(t *testing.T) {
	str := lexLString(t, `"hello"`)
	require.Equal(t, utf16.Encode([]rune("hello")), str.SV())
}

func TestLStringSingleQuoted(t *testing.T) {
	str := lexLString(t, `'it''s'`)
	// Single-quote literal followed immediately by its own closing
	// delimiter: the content is just "it".
	require.Equal(t, utf16.Encode([]rune("it")), str.SV())
}

func TestLStringEscape(t *testing.T) {
	str := lexLString(t, `"a\nb"`)
	require.Equal(t, utf16.Encode([]rune("a\nb")), str.SV())
}

// A backslash directly followed by a line terminator is a line
// continuation: it contributes nothing to the string's value.
func TestLStringLineContinuationErased(t *testing.T) {
	str := lexLString(t, "\"a\\\nb\"")
	require.Equal(t, utf16.Encode([]rune("ab")), str.SV())
}

// U+2028/U+2029 are permitted unescaped inside a string literal.
func TestLStringRawLineSeparator(t *testing.T) {
	str := lexLString(t, "\"a\u2028b\"")
	require.Equal(t, utf16.Encode([]rune("a\u2028b")), str.SV())
}

func TestLStringUnterminatedIsError(t *testing.T) {
	file := source.NewFile("test.json5", `"abc`)
	s := lex.NewStream(file)
	r := token.LexLString(s)
	require.True(t, r.IsErrant())
}

// A raw, unescaped line terminator inside a string (not preceded by a
// backslash) is not a valid string character; the string closes early
// and the missing-delimiter check fires.
func TestLStringRawNewlineIsError(t *testing.T) {
	file := source.NewFile("test.json5", "\"a\nb\"")
	s := lex.NewStream(file)
	r := token.LexLString(s)
	require.True(t, r.IsErrant())
}
