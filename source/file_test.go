package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/source"
)

func TestFileLocateSingleLine(t *testing.T) {
	file := source.NewFile("test.json5", "hello")
	loc := file.Locate(file.Span(2, 3))
	require.Equal(t, 1, loc.Line)
	require.Equal(t, 3, loc.Column)
}

func TestFileLocateAcrossLines(t *testing.T) {
	file := source.NewFile("test.json5", "ab\ncd\nef")
	loc := file.Locate(file.Span(6, 7))
	require.Equal(t, 3, loc.Line)
	require.Equal(t, 1, loc.Column)
}

// CRLF must count as a single line break, not two.
func TestFileLocateCRLFIsOneLineBreak(t *testing.T) {
	file := source.NewFile("test.json5", "ab\r\ncd")
	loc := file.Locate(file.Span(4, 5))
	require.Equal(t, 2, loc.Line)
	require.Equal(t, 1, loc.Column)
}

// A lone CR (no following LF) still ends a line.
func TestFileLocateLoneCRIsLineBreak(t *testing.T) {
	file := source.NewFile("test.json5", "ab\rcd")
	loc := file.Locate(file.Span(3, 4))
	require.Equal(t, 2, loc.Line)
	require.Equal(t, 1, loc.Column)
}

func TestFileIndentation(t *testing.T) {
	file := source.NewFile("test.json5", "  \tx: 1")
	require.Equal(t, "  \t", file.Indentation(source.Loc(3)))
}

func TestFileSourceAtOutOfBounds(t *testing.T) {
	file := source.NewFile("test.json5", "ab")
	_, ok := file.SourceAt(file.Span(0, 10))
	require.False(t, ok)
}
