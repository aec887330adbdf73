package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
	"github.com/avdan-os/json5/token"
)

// A lone CR immediately at end of input must still lex as a complete
// LineTerminatorSequence (the CRLF fallback arm), not an error or a
// Nothing result starved of a following LF.
func TestLineTerminatorSequenceCRAtEOF(t *testing.T) {
	file := source.NewFile("test.json5", "\r")
	s := lex.NewStream(file)

	r := token.LexLineTerminatorSequence(s)
	require.True(t, r.IsLexed())
	require.Equal(t, 1, r.Value().Span().Len())
	require.True(t, s.Done())
}

func TestLineTerminatorSequenceCRLF(t *testing.T) {
	file := source.NewFile("test.json5", "\r\nx")
	s := lex.NewStream(file)

	r := token.LexLineTerminatorSequence(s)
	require.True(t, r.IsLexed())
	require.Equal(t, 2, r.Value().Span().Len(), "CRLF must lex as one two-character sequence")
	require.Equal(t, 2, s.Index())
}

func TestLineTerminatorSequenceLoneLF(t *testing.T) {
	file := source.NewFile("test.json5", "\n")
	s := lex.NewStream(file)

	r := token.LexLineTerminatorSequence(s)
	require.True(t, r.IsLexed())
	require.Equal(t, 1, r.Value().Span().Len())
}
