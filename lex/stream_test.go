package lex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdan-os/json5/lex"
	"github.com/avdan-os/json5/source"
)

func TestStreamPeekTake(t *testing.T) {
	file := source.NewFile("test.json5", "ab")
	s := lex.NewStream(file)

	r, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 'a', r)
	require.Equal(t, 0, s.Index())

	loc, r, ok := s.Take()
	require.True(t, ok)
	require.Equal(t, 'a', r)
	require.Equal(t, source.Loc(0), loc)
	require.Equal(t, 1, s.Index())

	_, _, ok = s.Take()
	require.True(t, ok)
	require.True(t, s.Done())

	_, _, ok = s.Take()
	require.False(t, ok, "Take at end of input must not advance or succeed")
}

func TestStreamForkIsIndependent(t *testing.T) {
	file := source.NewFile("test.json5", "abc")
	s := lex.NewStream(file)
	s.Take()

	fork := s.Fork()
	fork.Take()
	fork.Take()

	require.Equal(t, 1, s.Index(), "mutating a fork must not affect the original stream")
	require.Equal(t, 3, fork.Index())

	s.Adopt(fork)
	require.Equal(t, 3, s.Index(), "Adopt must copy the fork's index back")
}

func TestStreamUpcomingLiteral(t *testing.T) {
	file := source.NewFile("test.json5", "\r\nrest")
	s := lex.NewStream(file)

	require.True(t, s.UpcomingLiteral("\r\n"))
	require.False(t, s.UpcomingLiteral("\n"))
	require.Equal(t, 0, s.Index(), "UpcomingLiteral must not consume")
}

func TestStreamTakeWhileEmptyIsNotOK(t *testing.T) {
	file := source.NewFile("test.json5", "123")
	s := lex.NewStream(file)

	_, _, ok := s.TakeWhile(func(r rune) bool { return r == 'x' })
	require.False(t, ok)
	require.Equal(t, 0, s.Index(), "a zero-length TakeWhile must not move the cursor")
}
