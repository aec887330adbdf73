package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

func lexEscapeAfterBackslash(t *testing.T, text string) token.EscapeSequence {
	t.Helper()
	file := source.NewFile("test.json5", text)
	s := lex.NewStream(file)
	r := token.LexEscapeSequence(s)
	require.True(t, r.IsLexed(), "expected %q to lex as an escape sequence", text)
	return r.Value()
}

func TestSingleEscapeChar(t *testing.T) {
	cases := map[string]uint16{
		"n": '\n',
		"t": '\t',
		"\\": '\\',
		"'": '\'',
	}
	for text, want := range cases {
		cv := lexEscapeAfterBackslash(t, text).CV()
		require.Equal(t, []uint16{want}, cv, "CV of \\%s", text)
	}
}

func TestNullEscapeNotFollowedByDigit(t *testing.T) {
	esc := lexEscapeAfterBackslash(t, "0")
	require.Equal(t, []uint16{0}, esc.CV())
	_, ok := esc.(token.Null)
	require.True(t, ok)
}

// \0 followed by another decimal digit is not the null escape (it would be
// an octal escape, a non-goal). Digits are not NonEscapeChars either, so no
// escape alternative accepts it.
func TestNullEscapeFollowedByDigitIsNotNull(t *testing.T) {
	file := source.NewFile("test.json5", "01")
	s := lex.NewStream(file)
	require.False(t, token.PeekNull(s))
}

func TestHexEscapeSequence(t *testing.T) {
	esc := lexEscapeAfterBackslash(t, "x41")
	hex, ok := esc.(token.HexEscapeSequence)
	require.True(t, ok)
	require.Equal(t, []uint16{0x41}, hex.CV())
}

func TestUnicodeEscapeSequence(t *testing.T) {
	esc := lexEscapeAfterBackslash(t, "u00e9")
	uni, ok := esc.(token.UnicodeEscapeSequence)
	require.True(t, ok)
	require.Equal(t, uint16(0x00e9), uni.CodeUnit())
}

func TestHexEscapeSequenceRequiresTwoDigits(t *testing.T) {
	file := source.NewFile("test.json5", "x4")
	s := lex.NewStream(file)
	r := token.LexHexEscapeSequence(s)
	require.True(t, r.IsErrant(), "a single hex digit after \\x must be rejected")
}

func TestNonEscapeChar(t *testing.T) {
	esc := lexEscapeAfterBackslash(t, "y")
	require.Equal(t, []uint16{'y'}, esc.CV())
}
