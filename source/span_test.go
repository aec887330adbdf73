package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/source"
)

func TestSpanCombine(t *testing.T) {
	file := source.NewFile("test.json5", "hello world")
	a := file.Span(0, 5)
	b := file.Span(6, 11)

	combined := a.Combine(b)
	require.Equal(t, source.Loc(0), combined.Start)
	require.Equal(t, source.Loc(11), combined.End)
	require.Equal(t, "hello world", combined.Text())
}

func TestSpanCombineNoOthersReturnsUnchanged(t *testing.T) {
	file := source.NewFile("test.json5", "hello")
	a := file.Span(0, 5)
	require.Equal(t, a, a.Combine())
}

func TestSpanSubspan(t *testing.T) {
	file := source.NewFile("test.json5", "hello world")
	whole := file.Span(0, 11)

	sub, ok := whole.Subspan(0, 5)
	require.True(t, ok)
	require.Equal(t, "hello", sub.Text())

	_, ok = whole.Subspan(0, 100)
	require.False(t, ok, "Subspan must fail when the requested range overflows the span")
}

func TestSpanSingleCharAndEmpty(t *testing.T) {
	file := source.NewFile("test.json5", "x")

	single := source.SingleChar(file, 0)
	require.Equal(t, 1, single.Len())

	empty := source.Empty(file, 0)
	require.Equal(t, 0, empty.Len())
	require.False(t, empty.IsZero(), "Empty still carries a File, so it is not the zero Span")
}

func TestSpanZeroValueIsZero(t *testing.T) {
	var s source.Span
	require.True(t, s.IsZero())
}
